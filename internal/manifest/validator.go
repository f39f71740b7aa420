package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/package.schema.json
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
	Issues []string
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
		if err := c.AddResource("package.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("package.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks a composed package manifest against the embedded schema.
// The error return is for schema compilation or serialization failures;
// validation issues are reported in the result.
func Validate(p *PackageJSON) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	// Round-trip through JSON so the validator sees the serialized shape,
	// json.Number included.
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("serializing manifest: %w", err)
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("reparsing manifest: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		valErr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("validating manifest: %w", err)
		}
		return &ValidationResult{Valid: false, Issues: flattenIssues(valErr)}, nil
	}

	return &ValidationResult{Valid: true}, nil
}

// flattenIssues walks the validation error tree and collects leaf messages.
func flattenIssues(err *jsonschema.ValidationError) []string {
	var issues []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			msg := e.Error()
			if e.ErrorKind != nil {
				msg = e.ErrorKind.LocalizedString(printer)
			}
			loc := "/" + strings.Join(e.InstanceLocation, "/")
			issues = append(issues, fmt.Sprintf("%s: %s", loc, msg))
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
