package scenario

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// scenarioSchema validates the file shape before name resolution, so typos
// in keys fail with a schema path instead of a silent zero value.
const scenarioSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "docks", "robots"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "exclusive_docks": {"type": "boolean"},
    "docks": {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}},
    "edges": {"$ref": "#/$defs/edgeList"},
    "one_way_edges": {"$ref": "#/$defs/edgeList"},
    "robots": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "slots", "max_weight", "at"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "slots": {"type": "integer", "minimum": 1, "maximum": 3},
          "max_weight": {"type": "integer", "minimum": 1},
          "at": {"type": "string", "minLength": 1},
          "load": {"type": "array", "items": {"type": "string", "minLength": 1}}
        }
      }
    },
    "containers": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "weight"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "weight": {"type": "integer", "minimum": 1}
        }
      }
    },
    "piles": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "dock"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "dock": {"type": "string", "minLength": 1},
          "stack": {"type": "array", "items": {"type": "string", "minLength": 1}}
        }
      }
    },
    "goal": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "in_pile": {"$ref": "#/$defs/memberList"},
        "pile_top": {"$ref": "#/$defs/memberList"},
        "under": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["below", "above", "pile"],
            "additionalProperties": false,
            "properties": {
              "below": {"type": "string", "minLength": 1},
              "above": {"type": "string", "minLength": 1},
              "pile": {"type": "string", "minLength": 1}
            }
          }
        },
        "robot_at": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["robot", "dock"],
            "additionalProperties": false,
            "properties": {
              "robot": {"type": "string", "minLength": 1},
              "dock": {"type": "string", "minLength": 1}
            }
          }
        }
      }
    }
  },
  "$defs": {
    "edgeList": {
      "type": "array",
      "items": {
        "type": "array",
        "minItems": 2,
        "maxItems": 2,
        "items": {"type": "string", "minLength": 1}
      }
    },
    "memberList": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["container", "pile"],
        "additionalProperties": false,
        "properties": {
          "container": {"type": "string", "minLength": 1},
          "pile": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("scenario.schema.json", scenarioSchema)

// validateSchema checks raw YAML against the scenario schema. The document
// is decoded and round-tripped through JSON so the validator sees the value
// kinds it expects.
func validateSchema(b []byte) error {
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return err
	}
	jb, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("scenario is not schema-checkable: %w", err)
	}
	var norm any
	if err := json.Unmarshal(jb, &norm); err != nil {
		return err
	}
	if err := compiledSchema.Validate(norm); err != nil {
		return fmt.Errorf("scenario schema: %w", err)
	}
	return nil
}
