// Package links rewrites [[name]] cross-reference markup embedded in
// documentation text into HTML hyperlinks resolved against a project index.
// Resolution never fails a build: every unresolved step degrades the emitted
// markup and logs one warning describing what could not be found.
package links

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/fortdoc-labs/fortdoc/entity"
)

// linkRe matches the four accepted markup forms: [[name]], [[name(class)]],
// [[name:sub]] and [[name(class):sub(subclass)]]. The primary name may carry
// one internal dot so file names like utils.f90 resolve.
var linkRe = regexp.MustCompile(`\[\[(\w+(?:\.\w+)?)(?:\((\w+)\))?(?::(\w+)(?:\((\w+)\))?)?\]\]`)

// target pairs a primary classifier with the project collection it searches.
type target struct {
	classifier string
	collection entity.Collection
}

// linkTargets is consulted in order: an unclassified link searches the
// collections in first-occurrence order and the first name match anywhere
// wins. Several classifiers are spellings of the same collection.
var linkTargets = []target{
	{"module", entity.CollModules},
	{"extmodule", entity.CollExtModules},
	{"type", entity.CollTypes},
	{"exttype", entity.CollExtTypes},
	{"procedure", entity.CollProcedures},
	{"extprocedure", entity.CollExtProcedures},
	{"subroutine", entity.CollProcedures},
	{"extsubroutine", entity.CollExtProcedures},
	{"function", entity.CollProcedures},
	{"extfunction", entity.CollExtProcedures},
	{"proc", entity.CollProcedures},
	{"extproc", entity.CollExtProcedures},
	{"file", entity.CollFiles},
	{"interface", entity.CollAbsInterfaces},
	{"extinterface", entity.CollExtInterfaces},
	{"absinterface", entity.CollAbsInterfaces},
	{"extabsinterface", entity.CollExtInterfaces},
	{"program", entity.CollPrograms},
	{"block", entity.CollBlockData},
}

// subTarget pairs a sub-entity classifier with the child relation it
// searches on the matched entity.
type subTarget struct {
	classifier string
	relation   entity.Relation
}

var subTargets = []subTarget{
	{"variable", entity.RelVariables},
	{"type", entity.RelTypes},
	{"constructor", entity.RelConstructor},
	{"interface", entity.RelInterfaces},
	{"absinterface", entity.RelAbsInterfaces},
	{"subroutine", entity.RelSubroutines},
	{"function", entity.RelFunctions},
	{"final", entity.RelFinalProcs},
	{"bound", entity.RelBoundProcs},
	{"modproc", entity.RelModProcs},
	{"common", entity.RelCommon},
}

// Resolver rewrites link markup against one project index. The project is
// read-only to the resolver; diagnostics go to the logger.
type Resolver struct {
	project *entity.Project
	logger  *log.Logger
}

// NewResolver returns a resolver over project. A nil logger falls back to
// stderr.
func NewResolver(project *entity.Project, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "links"})
	}
	return &Resolver{project: project, logger: logger}
}

// Substitute replaces every link markup occurrence in text. Surrounding text
// is preserved byte for byte.
func (r *Resolver) Substitute(text string) string {
	return linkRe.ReplaceAllStringFunc(text, r.convert)
}

// convert resolves one matched markup string. Degradation ladder: an
// unrecognized classifier returns the markup untouched; an unresolved name
// emits an anchor with no href; an unresolvable sub-entity part either
// returns the markup untouched (bad classifier or containment) or keeps the
// primary link (name simply absent).
func (r *Resolver) convert(markup string) string {
	m := linkRe.FindStringSubmatch(markup)
	name, classifier, subName, subClassifier := m[1], m[2], m[3], m[4]

	searchList, ok := r.primarySearch(classifier)
	if !ok {
		r.logger.Warn("could not substitute link: unrecognized classification",
			"link", markup, "classification", classifier)
		return markup
	}

	item := entity.FindByName(searchList, name)
	if item == nil {
		r.logger.Warn("could not substitute link: name not found",
			"link", markup, "name", name)
	}

	url, label := "", name
	if item != nil {
		url, label = item.URL(), item.Name

		if subName != "" {
			subList, ok := r.subSearch(item, subClassifier, markup)
			if !ok {
				return markup
			}
			if sub := entity.FindByName(subList, subName); sub != nil {
				url += "#" + sub.Anchor()
				label = sub.Name
			} else {
				r.logger.Warn("could not substitute link: sub-entity not found, linking to parent instead",
					"link", markup, "name", subName, "parent", item.Name)
			}
		}
	}

	if item == nil {
		return fmt.Sprintf("<a>%s</a>", label)
	}
	return fmt.Sprintf(`<a href="%s">%s</a>`, url, label)
}

// primarySearch returns the entities to search for the primary name. With no
// classifier that is the union of every collection in table order, each
// collection contributing once; with a classifier it is that classifier's
// collection, or ok=false when the classifier is unknown. Classifiers match
// case-insensitively, like names.
func (r *Resolver) primarySearch(classifier string) ([]*entity.Entity, bool) {
	if classifier == "" {
		var union []*entity.Entity
		seen := make(map[entity.Collection]bool)
		for _, t := range linkTargets {
			if seen[t.collection] {
				continue
			}
			seen[t.collection] = true
			union = append(union, r.project.Collection(t.collection)...)
		}
		return union, true
	}
	for _, t := range linkTargets {
		if strings.EqualFold(t.classifier, classifier) {
			return r.project.Collection(t.collection), true
		}
	}
	return nil, false
}

// subSearch returns the children of item to search for the sub-entity name.
// With no classifier that is the union of every child relation item owns, in
// table order. Classifiers match case-insensitively; one that is unknown, or
// names a relation item's kind cannot contain, logs a warning and reports
// ok=false.
func (r *Resolver) subSearch(item *entity.Entity, classifier, markup string) ([]*entity.Entity, bool) {
	if classifier == "" {
		var union []*entity.Entity
		for _, t := range subTargets {
			if item.Owns(t.relation) {
				union = append(union, item.Children(t.relation)...)
			}
		}
		return union, true
	}
	for _, t := range subTargets {
		if !strings.EqualFold(t.classifier, classifier) {
			continue
		}
		if !item.Owns(t.relation) {
			r.logger.Warn("could not substitute link: sub-entity cannot be contained in item",
				"link", markup, "classification", classifier, "item", item.Name)
			return nil, false
		}
		return item.Children(t.relation), true
	}
	r.logger.Warn("could not substitute link: unrecognized sub-entity classification",
		"link", markup, "classification", classifier)
	return nil, false
}
