package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/fortdoc.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is a single schema violation.
type ValidationIssue struct {
	Path    string // instance location, e.g. "/external/0"
	Message string
	Keyword string // schema keyword that failed
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("fortdoc.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("fortdoc.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks raw fortdoc.yaml bytes against the manifest schema. The
// error return is for I/O and compilation failures; schema violations come
// back in the ValidationResult.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	// The validator speaks JSON, so bridge the YAML through it. yaml.v3
	// decodes mappings with string keys, which json.Marshal accepts as-is.
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}
	return &ValidationResult{Issues: flattenIssues(ve)}, nil
}

// ValidateFile reads a file and validates it against the manifest schema.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

// flattenIssues walks the validation error tree and returns deduplicated
// leaf issues. Container keywords carry no information of their own and are
// dropped in favor of their causes; when everything is a container the
// top-level error text stands in.
func flattenIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	seen := make(map[string]bool)

	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) > 0 {
			for _, cause := range e.Causes {
				walk(cause)
			}
			return
		}
		if e.ErrorKind == nil {
			return
		}
		kwPath := e.ErrorKind.KeywordPath()
		keyword := ""
		if len(kwPath) > 0 {
			keyword = kwPath[len(kwPath)-1]
		}
		switch keyword {
		case "", "oneOf", "allOf", "anyOf", "$ref":
			return
		}
		issue := ValidationIssue{
			Path:    "/" + strings.Join(e.InstanceLocation, "/"),
			Message: e.ErrorKind.LocalizedString(printer),
			Keyword: keyword,
		}
		if len(e.InstanceLocation) == 0 {
			issue.Path = ""
		}
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			issues = append(issues, issue)
		}
	}
	walk(ve)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return issues
}
