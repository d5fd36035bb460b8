package config

import (
	"fmt"
	"reflect"
	"slices"

	"gopkg.in/yaml.v3"
)

// OptionalString is a YAML string that remembers whether it was set.
// An explicit empty string is a meaningful value, distinct from an absent key.
type OptionalString struct {
	// Value is the decoded string.
	Value string
	// Set reports whether the key was present.
	Set bool
}

// Some returns a set OptionalString.
func Some(value string) OptionalString {
	return OptionalString{Value: value, Set: true}
}

// Ptr returns nil when unset and a pointer to a copy of the value otherwise.
func (o OptionalString) Ptr() *string {
	if !o.Set {
		return nil
	}

	value := o.Value

	return &value
}

// IsZero reports whether the value is unset, so omitempty drops it.
func (o OptionalString) IsZero() bool {
	return !o.Set
}

// MarshalYAML writes the plain string.
func (o OptionalString) MarshalYAML() (any, error) {
	return o.Value, nil
}

// UnmarshalYAML accepts scalars only. Null never reaches this method; see rejectNullKeys.
func (o *OptionalString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected a string at line %d", ErrInvalid, node.Line)
	}

	if err := node.Decode(&o.Value); err != nil {
		return err
	}

	o.Set = true

	return nil
}

// optionalKeys are the keys decoded into OptionalString fields.
//
//nolint:gochecknoglobals // Read-only list shared by Config and Definition decoding.
var optionalKeys = []string{"prefix_template"}

// rejectNullKeys fails when one of keys maps to an explicit null.
// yaml.v3 skips unmarshalers for null nodes, so the check runs on the parent mapping.
func rejectNullKeys(node *yaml.Node, keys ...string) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if slices.Contains(keys, key.Value) && value.ShortTag() == "!!null" {
			return fmt.Errorf("%w: %s is null at line %d, use \"\" to disable it", ErrInvalid, key.Value, value.Line)
		}
	}

	return nil
}

// UnmarshalYAML decodes the configuration, rejecting null optional templates.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	if err := rejectNullKeys(node, optionalKeys...); err != nil {
		return err
	}

	type plain Config

	return node.Decode((*plain)(c))
}

// UnmarshalYAML decodes a definition, rejecting null optional templates.
func (d *Definition) UnmarshalYAML(node *yaml.Node) error {
	if err := rejectNullKeys(node, optionalKeys...); err != nil {
		return err
	}

	type plain Definition

	return node.Decode((*plain)(d))
}

// optionalStringTransformer lets a set OptionalString, even an empty one, override during merges.
type optionalStringTransformer struct{}

// Transformer implements mergo.Transformers.
func (optionalStringTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeFor[OptionalString]() {
		return nil
	}

	return func(dst, src reflect.Value) error {
		if dst.CanSet() && src.Interface().(OptionalString).Set { //nolint:forcetypeassert // Type checked above.
			dst.Set(src)
		}

		return nil
	}
}
