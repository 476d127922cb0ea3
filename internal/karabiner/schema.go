package karabiner

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://github.com/peterjc/kana-chording-ke/schema/complex_modifications.json"

//go:embed schema/complex_modifications.json
var schemaSource []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaSource)); err != nil {
			schemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compiling schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// Validate checks d against the complex modifications schema, as the
// rendered JSON that Karabiner-Elements would read.
func Validate(d *Document) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	return ValidateJSON(data)
}

// ValidateJSON checks raw document JSON against the schema.
func ValidateJSON(data []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("document does not match schema: %w", err)
	}
	return nil
}
