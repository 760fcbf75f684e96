package caster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/influxqs/types"
)

func TestExprCaster(t *testing.T) {
	tests := []struct {
		expression string
		in         string
		want       types.Value
	}{
		{"float(value) * 100", "1.25", types.NumberValue(125)},
		{"upper(trim(value))", "  abc ", types.StringValue("ABC")},
		{"value == 'yes'", "yes", types.BoolValue(true)},
		{"len(value)", "four", types.NumberValue(4)},
		{"split(value, '|')", "a|b", types.ArrayValue(types.StringValue("a"), types.StringValue("b"))},
	}
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			c, err := NewExprCaster(tt.expression)
			require.NoError(t, err)
			got, err := c(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExprCasterErrors(t *testing.T) {
	_, err := NewExprCaster("value +")
	assert.Error(t, err)

	_, err = NewExprCaster("unknownVar * 2")
	assert.Error(t, err)

	c, err := NewExprCaster("float(value)")
	require.NoError(t, err)
	r := NewRegistry(map[string]Caster{"f": c})
	_, err = r.Cast("f", "not a number")
	assert.ErrorIs(t, err, types.ErrCast)
}

func TestCompileExprCasters(t *testing.T) {
	casters, err := CompileExprCasters(map[string]string{
		"cents": "float(value) * 100",
		"lower": "lower(value)",
	})
	require.NoError(t, err)
	assert.Len(t, casters, 2)

	_, err = CompileExprCasters(map[string]string{
		"b": "value +",
		"a": "value -",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "caster a:")

	casters, err = CompileExprCasters(nil)
	require.NoError(t, err)
	assert.Empty(t, casters)
}
