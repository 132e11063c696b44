package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed options.schema.json
var schemaText string

const schemaURL = "https://jaklogic.local/options.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func optionsSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString(schemaURL, schemaText)
	})
	return schema, schemaErr
}

// Load reads a YAML options file. Fields the file omits keep their
// defaults.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("config: read options: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML options over the defaults after checking them
// against the options schema.
func Parse(data []byte) (Options, error) {
	if err := validateSchema(data); err != nil {
		return Options{}, err
	}
	o := Defaults()
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, fmt.Errorf("config: decode options: %w", err)
	}
	return o, nil
}

// validateSchema converts the YAML document to its JSON form and validates
// it, so typos and out-of-range values are reported by field.
func validateSchema(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: decode options: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config: convert options: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("config: convert options: %w", err)
	}

	s, err := optionsSchema()
	if err != nil {
		return fmt.Errorf("config: compile schema: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("config: invalid options: %w", err)
	}
	return nil
}
