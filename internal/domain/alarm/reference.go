package alarm

import "encoding/json"

// Ref references another resource of the template by its logical ID.
type Ref struct {
	// LogicalID is the logical ID of the referenced resource.
	LogicalID string
}

// MarshalJSON renders the reference as {"Ref": "<id>"}.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value())
}

// MarshalYAML renders the reference as a single-key mapping.
func (r Ref) MarshalYAML() (any, error) {
	return r.value(), nil
}

func (r Ref) value() map[string]string {
	return map[string]string{"Ref": r.LogicalID}
}

// GetAtt reads an attribute of another resource of the template.
type GetAtt struct {
	// LogicalID is the logical ID of the resource owning the attribute.
	LogicalID string
	// Attribute is the attribute name, e.g. Version or Arn.
	Attribute string
}

// MarshalJSON renders the value as {"Fn::GetAtt": ["<id>", "<attribute>"]}.
func (g GetAtt) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.value())
}

// MarshalYAML renders the value as a single-key mapping.
func (g GetAtt) MarshalYAML() (any, error) {
	return g.value(), nil
}

func (g GetAtt) value() map[string][]string {
	return map[string][]string{"Fn::GetAtt": {g.LogicalID, g.Attribute}}
}

// Join concatenates values with a delimiter at deployment time.
type Join struct {
	// Delimiter is placed between the joined values.
	Delimiter string
	// Values are literals or other opaque values.
	Values []any
}

// MarshalJSON renders the value as {"Fn::Join": ["<delimiter>", [values...]]}.
func (j Join) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.value())
}

// MarshalYAML renders the value as a single-key mapping.
func (j Join) MarshalYAML() (any, error) {
	return j.value(), nil
}

func (j Join) value() map[string][]any {
	values := j.Values
	if values == nil {
		values = []any{}
	}

	return map[string][]any{"Fn::Join": {j.Delimiter, values}}
}
