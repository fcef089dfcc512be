package interchange

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/modules.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// documentSchema compiles the embedded interchange schema once.
func documentSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("modules.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("modules.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// ValidateDocument checks a raw interchange document against the embedded
// schema. A schema violation comes back as a single error summarizing the
// first few leaf issues; malformed JSON and compilation failures are
// reported as such.
func ValidateDocument(data []byte) error {
	schema, err := documentSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validating document: %w", err)
	}
	return fmt.Errorf("document failed schema validation: %s", summarize(ve))
}

// summarize flattens a validation error tree into at most three leaf issues.
// Container keywords like oneOf carry no information of their own and are
// skipped in favor of their causes.
func summarize(ve *jsonschema.ValidationError) string {
	var leaves []string
	collectLeaves(ve, &leaves)
	if len(leaves) == 0 {
		return ve.Error()
	}
	const keep = 3
	if len(leaves) > keep {
		leaves = append(leaves[:keep], fmt.Sprintf("and %d more", len(leaves)-keep))
	}
	return strings.Join(leaves, "; ")
}

func collectLeaves(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		keyword := ""
		if ve.ErrorKind != nil {
			if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
				keyword = kw[len(kw)-1]
			}
		}
		if keyword == "oneOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		*out = append(*out, path+": "+ve.ErrorKind.LocalizedString(printer))
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, out)
	}
}
