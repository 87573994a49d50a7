package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gslf/xcdn-go/ast"
)

func TestValueAccessorsTotal(t *testing.T) {
	t.Parallel()

	v := ast.IntValue(42)
	assert.Equal(t, ast.Int, v.Kind())
	assert.Equal(t, int64(42), v.AsInt())

	// total accessors: wrong-kind access returns the zero value, never panics
	assert.Equal(t, false, v.AsBool())
	assert.Equal(t, float64(0), v.AsFloat())
	assert.Equal(t, "", v.AsString())
	assert.Nil(t, v.AsBytes())
	assert.Nil(t, v.AsArray())
	assert.Nil(t, v.AsObject())
}

func TestValueAsText(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		v    ast.Value
		want string
	}{
		"string":   {ast.StringValue("hi"), "hi"},
		"decimal":  {ast.DecimalValue("12.50"), "12.50"},
		"datetime": {ast.DateTimeValue("2025-01-01T00:00:00Z"), "2025-01-01T00:00:00Z"},
		"duration": {ast.DurationValue("PT30S"), "PT30S"},
		"uuid":     {ast.UUIDValue("550e8400-e29b-41d4-a716-446655440000"), "550e8400-e29b-41d4-a716-446655440000"},
		"int has no text": {ast.IntValue(1), ""},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.v.AsText())
		})
	}
}

func TestNullValueIsNull(t *testing.T) {
	t.Parallel()

	assert.True(t, ast.NullValue().IsNull())
	assert.False(t, ast.IntValue(0).IsNull())
}

func TestArrayValueSkipsNilItems(t *testing.T) {
	t.Parallel()

	n1 := ast.NewNode(ast.IntValue(1))
	n2 := ast.NewNode(ast.IntValue(2))
	v := ast.ArrayValue(n1, nil, n2)

	assert.Equal(t, ast.Array, v.Kind())
	assert.Len(t, v.AsArray(), 2)
	assert.Equal(t, 2, v.Len())
}

func TestAppendArrayItemGrowsInPlace(t *testing.T) {
	t.Parallel()

	v := ast.ArrayValue(ast.NewNode(ast.IntValue(1)))
	v.AppendArrayItem(ast.NewNode(ast.IntValue(2)))
	v.AppendArrayItem(nil)

	assert.Equal(t, 2, v.Len())
	assert.Equal(t, int64(2), v.AsArray()[1].Value.AsInt())
}

func TestAppendArrayItemOnNonArrayIsNoOp(t *testing.T) {
	t.Parallel()

	v := ast.IntValue(1)
	v.AppendArrayItem(ast.NewNode(ast.IntValue(2)))

	assert.Equal(t, ast.Int, v.Kind())
}

func TestObjectValueOfNilYieldsEmptyObject(t *testing.T) {
	t.Parallel()

	v := ast.ObjectValueOf(nil)
	assert.Equal(t, ast.Object, v.Kind())
	assert.NotNil(t, v.AsObject())
	assert.Equal(t, 0, v.Len())
}

func TestValueKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Null", ast.Null.String())
	assert.Equal(t, "Object", ast.Object.String())
	assert.Equal(t, "(invalid)", ast.ValueKind(999).String())
}
