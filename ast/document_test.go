package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gslf/xcdn-go/ast"
)

func buildConfigDoc() *ast.Document {
	deep := ast.NewObject()
	deep.Set("value", ast.NewNode(ast.StringValue("found it!")))

	nested := ast.NewObject()
	nested.Set("deep", ast.NewNode(ast.ObjectValueOf(deep)))

	config := ast.NewObject()
	config.Set("name", ast.NewNode(ast.StringValue("demo")))
	config.Set("nested", ast.NewNode(ast.ObjectValueOf(nested)))

	doc := ast.New()
	doc.PushDirective("schema", ast.StringValue("meta.xcdn"))
	doc.PushTop(ast.NewNode(ast.ObjectValueOf(func() *ast.ObjectValue {
		top := ast.NewObject()
		top.Set("config", ast.NewNode(ast.ObjectValueOf(config)))
		return top
	}())))
	return doc
}

func TestDocumentGetKeyAndHasKey(t *testing.T) {
	t.Parallel()

	doc := buildConfigDoc()
	assert.True(t, doc.HasKey("config"))
	assert.False(t, doc.HasKey("missing"))
	require.NotNil(t, doc.GetKey("config"))
	assert.Equal(t, ast.Object, doc.GetKey("config").Value.Kind())
}

func TestDocumentGetDirective(t *testing.T) {
	t.Parallel()

	doc := buildConfigDoc()
	d := doc.GetDirective("schema")
	require.NotNil(t, d)
	assert.Equal(t, "meta.xcdn", d.Value.AsString())
	assert.Nil(t, doc.GetDirective("missing"))
}

func TestGetPathDescendsThroughObjects(t *testing.T) {
	t.Parallel()

	doc := buildConfigDoc()
	deep := ast.GetPath(doc, "config.nested.deep.value")
	require.NotNil(t, deep)
	assert.Equal(t, "found it!", deep.Value.AsString())

	assert.Nil(t, ast.GetPath(doc, "config.missing.deep"))
	assert.Nil(t, ast.GetPath(doc, ""))
}

func TestDocumentGetTopOutOfRange(t *testing.T) {
	t.Parallel()

	doc := ast.New()
	assert.Nil(t, doc.GetTop(0))
	assert.Nil(t, doc.GetKey("anything"))
	assert.False(t, doc.HasKey("anything"))
}

func TestDocumentPushTopSkipsNil(t *testing.T) {
	t.Parallel()

	doc := ast.New()
	doc.PushTop(nil)
	assert.Equal(t, 0, len(doc.Top))
}
