package csvimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitArray(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "trims and drops empty pieces", input: "a|b| c |", want: []string{"a", "b", "c"}},
		{name: "blank is empty", input: "   ", want: []string{}},
		{name: "empty is empty", input: "", want: []string{}},
		{name: "single value", input: "spring", want: []string{"spring"}},
		{name: "keeps repeats and order", input: "b|a|b", want: []string{"b", "a", "b"}},
		{name: "only separators", input: "| | |", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitArray(tt.input)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"true", "1", "yes", "TRUE", "Yes", " true "} {
		assert.True(t, ParseBool(v), "value %q", v)
	}
	for _, v := range []string{"", "false", "no", "maybe", "0", "y"} {
		assert.False(t, ParseBool(v), "value %q", v)
	}
}

func TestFields_Coercion(t *testing.T) {
	f := NewFields(
		[]string{"name", "count", "flag", "list", "missing"},
		[]string{"  Nettle ", "x12", "YES", "a|b"},
	)

	assert.Equal(t, "Nettle", f.String("name"))
	assert.Equal(t, "", f["missing"], "short rows map to empty values")
	assert.Equal(t, 7, f.Int("count", 7), "non-integers fall back to the default")
	assert.Equal(t, 3, f.Int("missing", 3))
	assert.True(t, f.Bool("flag", false))
	assert.True(t, f.Bool("missing", true), "blank booleans use the default")
	assert.False(t, f.Bool("missing", false))
	assert.Equal(t, []string{"a", "b"}, f.Array("list"))
	assert.Equal(t, []string{}, f.Array("missing"))
}

func TestNewFields_ExtraValuesDropped(t *testing.T) {
	f := NewFields([]string{"a"}, []string{"1", "2", "3"})
	assert.Equal(t, Fields{"a": "1"}, f)
}

func TestNewFields_RepeatedColumnKeepsFirst(t *testing.T) {
	f := NewFields([]string{"title", "tags", "title"}, []string{"Soup", "x", ""})
	assert.Equal(t, Fields{"title": "Soup", "tags": "x"}, f)
}

func TestJoinArray(t *testing.T) {
	assert.Equal(t, "a|b", JoinArray([]string{"a", "b"}))
	assert.Equal(t, "", JoinArray(nil))
	assert.Equal(t, []string{"x", "y"}, SplitArray(JoinArray([]string{"x", "y"})))
}
