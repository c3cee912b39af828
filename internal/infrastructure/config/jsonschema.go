package config

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/invopop/jsonschema"
)

// ConfigSchema returns the JSON schema of the configuration file.
func ConfigSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:               "toml",
		AllowAdditionalProperties:  false,
		RequiredFromJSONSchemaTags: true,
	}
	s := r.Reflect(&Config{})
	s.ID = "https://github.com/bnema/fontify/config.schema.json"
	s.Title = "fontify configuration"
	return marshalSchema(s)
}

// ExportSchema returns the JSON schema of a settings export document.
// Exclusion rules accept either a bare URL string or a url and type object.
func ExportSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
		Mapper:                     exclusionRuleMapper,
	}
	s := r.Reflect(&entity.SettingsExport{})
	s.ID = "https://github.com/bnema/fontify/settings-export.schema.json"
	s.Title = "fontify settings export"
	return marshalSchema(s)
}

var exclusionRuleType = reflect.TypeFor[entity.ExclusionRule]()

func exclusionRuleMapper(t reflect.Type) *jsonschema.Schema {
	if t != exclusionRuleType {
		return nil
	}

	kinds := []any{
		string(entity.ExclusionKindExact),
		string(entity.ExclusionKindDomain),
		string(entity.ExclusionKindPrefix),
	}

	object := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"url"},
	}
	object.Properties = jsonschema.NewProperties()
	object.Properties.Set("url", &jsonschema.Schema{Type: "string", Format: "uri"})
	object.Properties.Set("type", &jsonschema.Schema{Type: "string", Enum: kinds})

	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string", Description: "Legacy rule; the match kind is inferred from the URL"},
			object,
		},
	}
}

func marshalSchema(s *jsonschema.Schema) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	return data, nil
}
