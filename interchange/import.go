package interchange

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/fortdoc-labs/fortdoc/entity"
	"github.com/fortdoc-labs/fortdoc/macro"
)

// kindTags maps the kind tag of an imported record to the proxy kind built
// for it. A record's proctype, when present, takes precedence over its obj
// tag: procedures are written with obj "proc" and a proctype telling
// functions and subroutines apart.
var kindTags = map[string]entity.Kind{
	"module":         entity.KindModule,
	"interface":      entity.KindInterface,
	"type":           entity.KindType,
	"variable":       entity.KindVariable,
	"function":       entity.KindFunction,
	"subroutine":     entity.KindSubroutine,
	"boundprocedure": entity.KindBoundProcedure,
}

var remoteRe = regexp.MustCompile(`^https?://`)

// IsRemote reports whether a source location is fetched over HTTP rather
// than read from the local filesystem.
func IsRemote(location string) bool {
	return remoteRe.MatchString(location)
}

// Importer loads interchange documents from configured external sources and
// registers their entities as proxies in a project index.
type Importer struct {
	project *entity.Project
	macros  *macro.Registry
	client  *http.Client
	logger  *log.Logger
}

// Option configures an Importer.
type Option func(*Importer)

// WithHTTPClient sets the client used for remote sources. Callers own the
// timeout policy.
func WithHTTPClient(c *http.Client) Option {
	return func(im *Importer) {
		im.client = c
	}
}

// WithLogger routes import diagnostics to a custom logger.
func WithLogger(l *log.Logger) Option {
	return func(im *Importer) {
		im.logger = l
	}
}

// NewImporter returns an importer that registers proxies into project and
// source macros into macros.
func NewImporter(project *entity.Project, macros *macro.Registry, opts ...Option) *Importer {
	im := &Importer{
		project: project,
		macros:  macros,
		client:  http.DefaultClient,
		logger:  log.NewWithOptions(os.Stderr, log.Options{Prefix: "interchange"}),
	}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// ImportAll processes each "name = location" source definition in order and
// returns the number of top-level entities imported across all sources. An
// unreachable or invalid source is logged and contributes nothing; a
// malformed definition or a macro conflict stops the import, since those
// mean the project configuration itself is wrong.
func (im *Importer) ImportAll(sources []string) (int, error) {
	total := 0
	for _, definition := range sources {
		base, remote, err := im.registerSource(definition)
		if err != nil {
			return total, err
		}
		records, err := im.fetchDocument(base, remote)
		if err != nil {
			im.logger.Warn("skipping external source", "location", base, "error", err)
			continue
		}
		for _, rec := range records {
			if rec == nil {
				continue
			}
			if _, err := im.buildEntity(rec, base, remote); err != nil {
				im.logger.Error("discarding interchange record", "name", rec.Name, "error", err)
				continue
			}
			total++
		}
	}
	return total, nil
}

// Probe fetches and validates the document behind a single source definition
// without importing any records, returning the number of top-level entities a
// full import would register. Callers health-checking a source should hand
// the importer a throwaway project and registry.
func (im *Importer) Probe(definition string) (int, error) {
	base, remote, err := im.registerSource(definition)
	if err != nil {
		return 0, err
	}
	records, err := im.fetchDocument(base, remote)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, rec := range records {
		if rec != nil {
			n++
		}
	}
	return n, nil
}

// registerSource installs the source's macro and classifies its location.
// Remote bases are normalized to a trailing slash so later joins treat them
// as directories; local bases become absolute paths with environment
// variables expanded.
func (im *Importer) registerSource(definition string) (base string, remote bool, err error) {
	location, _, err := im.macros.Register(definition)
	if err != nil {
		return "", false, fmt.Errorf("registering external source: %w", err)
	}
	if IsRemote(location) {
		if !strings.HasSuffix(location, "/") {
			location += "/"
		}
		return location, true, nil
	}
	abs, err := filepath.Abs(os.ExpandEnv(location))
	if err != nil {
		return "", false, fmt.Errorf("resolving external source path %q: %w", location, err)
	}
	return abs, false, nil
}

// fetchDocument retrieves, validates and decodes the source's modules.json.
func (im *Importer) fetchDocument(base string, remote bool) ([]*Record, error) {
	var (
		data []byte
		err  error
	)
	if remote {
		data, err = im.fetchRemote(resolveURL(base, FileName))
	} else {
		data, err = os.ReadFile(filepath.Join(base, FileName))
	}
	if err != nil {
		return nil, err
	}

	if err := ValidateDocument(data); err != nil {
		return nil, err
	}
	var records []*Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding interchange document: %w", err)
	}
	return records, nil
}

func (im *Importer) fetchRemote(u string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "fortdoc")

	resp, err := im.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", u, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

// buildEntity turns one record subtree into registered proxy entities,
// parents before children. A child record that cannot be built is discarded
// with its own subtree; its siblings are unaffected.
func (im *Importer) buildEntity(rec *Record, base string, remote bool) (*entity.Entity, error) {
	key := strings.ToLower(rec.Obj)
	if rec.Proctype != "" {
		key = strings.ToLower(rec.Proctype)
	}
	kind, ok := kindTags[key]
	if !ok {
		return nil, fmt.Errorf("unrecognized entity kind tag %q", key)
	}

	e := entity.NewExternal(kind, rec.Name, rewriteURL(rec.ExternalURL, base, remote))
	if rec.Proctype != "" {
		e.Proctype = rec.Proctype
	}
	e.VarType = rec.VarType
	e.Permission = rec.Permission
	e.Generic = parseWireBool(rec.Generic)
	if kind == entity.KindType && rec.Extends != nil {
		// Inheritance across project boundaries is kept by name only.
		name := rec.Extends.Name
		if rec.Extends.Record != nil {
			name = rec.Extends.Record.Name
		}
		if name != "" {
			e.Extends = &entity.Extends{Name: name}
		}
	}

	if err := im.project.AddExternal(e); err != nil {
		return nil, err
	}

	for _, field := range childFields {
		kids := field.get(rec)
		if len(kids) == 0 {
			continue
		}
		if !e.Owns(field.relation) {
			im.logger.Error("discarding child records",
				"relation", field.relation, "parent", e.Name, "kind", e.Kind)
			continue
		}
		for _, kidRec := range kids {
			kid, err := im.buildEntity(kidRec, base, remote)
			if err != nil {
				im.logger.Error("discarding interchange record", "name", kidRec.Name, "error", err)
				continue
			}
			if err := e.AddChild(field.relation, kid); err != nil {
				im.logger.Error("discarding interchange record", "name", kid.Name, "error", err)
			}
		}
	}
	return e, nil
}

// rewriteURL maps a URL recorded relative to the producer's output root onto
// the consumer-visible base. The first path segment of the recorded form is
// the producer's own page-directory prefix and is dropped before joining; an
// empty URL stays empty.
func rewriteURL(raw, base string, remote bool) string {
	if raw == "" {
		return ""
	}
	rest := raw
	if i := strings.Index(raw, "/"); i >= 0 {
		rest = raw[i+1:]
	}
	if remote {
		return resolveURL(base, rest)
	}
	return filepath.Join(base, rest)
}

// resolveURL joins ref onto base per relative-reference resolution, falling
// back to ref verbatim when either side does not parse.
func resolveURL(base, ref string) string {
	bu, err := url.Parse(base)
	if err != nil {
		return ref
	}
	ru, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return bu.ResolveReference(ru).String()
}
