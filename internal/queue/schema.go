package queue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator checks job payloads against a JSON schema per job type.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

func NewValidator(schemas map[string]string) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiled := make(map[string]*jsonschema.Schema, len(schemas))

	for jobType, src := range schemas {
		url := "mem://jobs/" + jobType + ".json"

		if err := compiler.AddResource(url, strings.NewReader(src)); err != nil {
			return nil, fmt.Errorf("failed to add schema for %s: %w", jobType, err)
		}

		schema, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema for %s: %w", jobType, err)
		}

		compiled[jobType] = schema
	}

	return &Validator{schemas: compiled}, nil
}

func (v *Validator) Validate(jobType string, payload []byte) error {
	schema, ok := v.schemas[jobType]
	if !ok {
		return fmt.Errorf("no schema registered for job type %q", jobType)
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("payload is not valid json: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid %s payload: %w", jobType, err)
	}

	return nil
}
