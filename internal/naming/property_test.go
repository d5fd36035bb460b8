package naming

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"pgregory.net/rapid"

	"github.com/oshokin/alarm-naming/internal/domain/alarm"
)

// fragment draws identifiers mixing letters, digits and both separators.
func fragment() *rapid.Generator[string] {
	return rapid.StringOf(rapid.RuneFrom([]rune("abcxyzABCXYZ0189-_")))
}

// TestProperty_NormalizeIsIdentifierSafe checks that no separator survives and the first rune is upper-case.
func TestProperty_NormalizeIsIdentifierSafe(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := fragment().Draw(t, "fragment")
		got := Normalize(in)

		if strings.ContainsAny(got, "-_") {
			t.Fatalf("Normalize(%q)=%q contains a separator", in, got)
		}

		if in == "" {
			if got != "" {
				t.Fatalf("Normalize(\"\")=%q, want empty", got)
			}

			return
		}

		first, _ := utf8.DecodeRuneInString(got)
		if unicode.IsLetter(first) && !unicode.IsUpper(first) {
			t.Fatalf("Normalize(%q)=%q does not start with an upper-case letter", in, got)
		}

		if Normalize(in) != got {
			t.Fatalf("Normalize(%q) is not deterministic", in)
		}
	})
}

// TestProperty_NormalizeKeepsOtherRunes checks that removing the escapes restores the input up to the first rune.
func TestProperty_NormalizeKeepsOtherRunes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := rapid.StringOf(rapid.RuneFrom([]rune("abcxyz0189"))).Draw(t, "plain")

		got := Normalize(in)
		if in == "" {
			return
		}

		if got[1:] != in[1:] || !strings.EqualFold(got[:1], in[:1]) {
			t.Fatalf("Normalize(%q)=%q changed more than the first rune", in, got)
		}
	})
}

// TestProperty_DimensionOrdering checks the caller order is kept and defaults come last.
func TestProperty_DimensionOrdering(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOf(rapid.SampledFrom([]string{"FunctionName", "Duck", "Goose", "Swan"})).Draw(t, "names")
		withVersion := rapid.Bool().Draw(t, "withVersion")

		input := make([]alarm.Dimension, 0, len(names))
		for i, name := range names {
			input = append(input, alarm.Dimension{Name: name, Value: i})
		}

		cfg := &DimensionsConfig{
			Dimensions:  input,
			FunctionRef: "fn",
		}
		if withVersion {
			cfg.FunctionVersionLogicalID = "fnVersion"
			cfg.FunctionFullName = "stack-fn"
		}

		got, err := BuildDimensions(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var expected []alarm.Dimension
		for _, dimension := range input {
			if dimension.Name != FunctionNameDimension {
				expected = append(expected, dimension)
			}
		}

		tail := 1
		if withVersion {
			tail = 2
		}

		if len(got) != len(expected)+tail {
			t.Fatalf("got %d dimensions, want %d", len(got), len(expected)+tail)
		}

		for i, dimension := range expected {
			if got[i] != dimension {
				t.Fatalf("dimension %d = %+v, want %+v", i, got[i], dimension)
			}
		}

		if got[len(expected)].Name != FunctionNameDimension {
			t.Fatalf("FunctionName is not right after caller dimensions: %+v", got)
		}

		if withVersion && got[len(got)-1].Name != ResourceDimension {
			t.Fatalf("Resource is not last: %+v", got)
		}

		for i, dimension := range input {
			if dimension.Name != names[i] {
				t.Fatalf("input mutated at %d", i)
			}
		}
	})
}
