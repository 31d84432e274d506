package templates

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	rerrors "github.com/SibilSoren/react-vite-boilerplate/internal/errors"
)

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// getSchema compiles the embedded package.json schema once.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(packageSchema))
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

// ValidatePackageJSON checks rendered package.json content against the
// embedded schema. Any failure is a Template error.
func ValidatePackageJSON(content []byte) error {
	schema, err := getSchema()
	if err != nil {
		return rerrors.Template("package.json schema is unavailable", rerrors.WithCause(err))
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(content))
	if err != nil {
		return rerrors.Template("generated package.json is not valid JSON",
			rerrors.WithPath("package.json"), rerrors.WithCause(err))
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return rerrors.Template("validating package.json", rerrors.WithPath("package.json"), rerrors.WithCause(err))
	}
	return rerrors.Template("generated package.json does not match schema",
		rerrors.WithPath("package.json"), rerrors.WithCause(errors.New(strings.Join(issues(ve), "; "))))
}

// issues flattens the leaf messages of a validation error tree.
func issues(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		loc := "/" + strings.Join(ve.InstanceLocation, "/")
		msg := ve.Error()
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}
		return []string{loc + ": " + msg}
	}

	var out []string
	for _, c := range ve.Causes {
		out = append(out, issues(c)...)
	}
	return out
}

// PackageName derives the package.json name from a project name.
// package.json names must be lowercase.
func PackageName(projectName string) string {
	return strings.ToLower(strings.TrimSpace(projectName))
}
