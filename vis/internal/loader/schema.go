package loader

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Kind identifies one of the four reference-data payload shapes.
type Kind string

const (
	KindGmod       Kind = "gmod"
	KindCodebooks  Kind = "codebooks"
	KindLocations  Kind = "locations"
	KindVersioning Kind = "versioning"
)

const gmodSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["visRelease", "items", "relations"],
	"properties": {
		"visRelease": {"type": "string"},
		"items": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["code", "category", "type"],
				"properties": {
					"code": {"type": "string", "minLength": 1},
					"category": {"type": "string"},
					"type": {"type": "string"},
					"name": {"type": "string"}
				}
			}
		},
		"relations": {
			"type": "array",
			"items": {"type": "array", "minItems": 2, "maxItems": 2, "items": {"type": "string"}}
		}
	}
}`

const codebooksSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["visRelease", "items"],
	"properties": {
		"visRelease": {"type": "string"},
		"items": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "values"],
				"properties": {
					"name": {"type": "string"},
					"values": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["value"],
							"properties": {
								"value": {"type": "string", "minLength": 1},
								"group": {"type": "string"}
							}
						}
					}
				}
			}
		}
	}
}`

const locationsSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["visRelease", "items"],
	"properties": {
		"visRelease": {"type": "string"},
		"items": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["code", "name", "group"],
				"properties": {
					"code": {"type": "string", "minLength": 1, "maxLength": 1},
					"name": {"type": "string"},
					"group": {"type": "string"}
				}
			}
		}
	}
}`

const versioningSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["sourceVersion", "targetVersion", "items"],
	"properties": {
		"sourceVersion": {"type": "string"},
		"targetVersion": {"type": "string"},
		"items": {"type": "object"}
	}
}`

var schemaSources = map[Kind]string{
	KindGmod:       gmodSchemaJSON,
	KindCodebooks:  codebooksSchemaJSON,
	KindLocations:  locationsSchemaJSON,
	KindVersioning: versioningSchemaJSON,
}

// schemaCache compiles each kind's schema once and reuses it across
// every version's payload, mirroring the teacher's compile-once,
// validate-many validator cache.
type schemaCache struct {
	mu      sync.Mutex
	schemas map[Kind]*jsonschema.Schema
}

var globalSchemas = &schemaCache{schemas: make(map[Kind]*jsonschema.Schema)}

func (c *schemaCache) get(kind Kind) (*jsonschema.Schema, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.schemas[kind]; ok {
		return s, nil
	}

	source, ok := schemaSources[kind]
	if !ok {
		return nil, fmt.Errorf("loader: no schema registered for kind %q", kind)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	url := fmt.Sprintf("schema://%s.json", kind)
	if err := compiler.AddResource(url, strings.NewReader(source)); err != nil {
		return nil, fmt.Errorf("loader: registering %s schema: %w", kind, err)
	}

	schema, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("loader: compiling %s schema: %w", kind, err)
	}

	c.schemas[kind] = schema
	return schema, nil
}

// validate checks raw (already json.Unmarshal'd into an any) against
// kind's compiled schema.
func validate(kind Kind, raw any) error {
	schema, err := globalSchemas.get(kind)
	if err != nil {
		return err
	}
	if err := schema.Validate(raw); err != nil {
		return fmt.Errorf("loader: %s payload failed schema validation: %w", kind, err)
	}
	return nil
}
