package llm

import "fmt"

// FindTool looks a tool up in the catalogue by name.
func FindTool(name string) (Tool, bool) {
	for _, t := range AgentTools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// ValidateParams checks a parameter map against a tool's JSON Schema:
// required keys must be present, undeclared keys are rejected, and
// values must match the declared type.
func ValidateParams(t Tool, params map[string]any) error {
	properties, _ := t.Parameters["properties"].(map[string]any)

	if required, ok := t.Parameters["required"].([]string); ok {
		for _, key := range required {
			if _, present := params[key]; !present {
				return fmt.Errorf("%s: missing required parameter %q", t.Name, key)
			}
		}
	}

	for key, value := range params {
		schema, declared := properties[key]
		if !declared {
			return fmt.Errorf("%s: unknown parameter %q", t.Name, key)
		}
		spec, _ := schema.(map[string]any)
		typ, _ := spec["type"].(string)
		if err := checkType(typ, value); err != nil {
			return fmt.Errorf("%s: parameter %q: %w", t.Name, key, err)
		}
	}
	return nil
}

func checkType(typ string, value any) error {
	if value == nil {
		return nil
	}
	switch typ {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
	case "integer", "number":
		switch value.(type) {
		case float64, int, int64:
		default:
			return fmt.Errorf("expected number, got %T", value)
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected boolean, got %T", value)
		}
	case "array":
		if _, ok := value.([]any); !ok {
			return fmt.Errorf("expected array, got %T", value)
		}
	}
	return nil
}
