package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

type SchemaValidator interface {
	Validate(raw []byte) error
}

type schemaValidator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles schemaMap once; Validate is safe for concurrent use.
func NewSchemaValidator(schemaMap map[string]any) (SchemaValidator, error) {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("portfolio.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}

	schema, err := compiler.Compile("portfolio.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &schemaValidator{schema: schema}, nil
}

func (v *schemaValidator) Validate(raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
