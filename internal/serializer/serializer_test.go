package serializer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gslf/xcdn-go/ast"
	"github.com/gslf/xcdn-go/internal/parser"
	"github.com/gslf/xcdn-go/internal/serializer"
)

func mustParse(t *testing.T, src string) *ast.Document {
	t.Helper()
	doc, err := parser.Parse([]byte(src))
	require.Nil(t, err)
	return doc
}

func TestSerializeCompactObject(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `name: "demo", count: 3`)
	got := serializer.Serialize(doc, serializer.Compact)
	assert.Equal(t, `{name: "demo", count: 3}`, got)
}

func TestSerializePrettyObjectHasTrailingComma(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `name: "demo"`)
	got := serializer.Serialize(doc, serializer.Pretty)
	assert.Equal(t, "{\n  name: \"demo\",\n}", got)
}

func TestSerializeEmptyContainers(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `a: {}, b: []`)
	got := serializer.Serialize(doc, serializer.Compact)
	assert.Equal(t, `{a: {}, b: []}`, got)
}

func TestSerializeTypedLiteralsVerbatim(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `id: u"550e8400-e29b-41d4-a716-446655440000", timeout: r"PT30S"`)
	got := serializer.Serialize(doc, serializer.Compact)
	assert.Contains(t, got, `u"550e8400-e29b-41d4-a716-446655440000"`)
	assert.Contains(t, got, `r"PT30S"`)
}

func TestSerializeBytesReencodedStandard(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `payload: b"aGVsbG8="`)
	got := serializer.Serialize(doc, serializer.Compact)
	assert.Equal(t, `{payload: b"aGVsbG8="}`, got)
}

func TestSerializeAnnotationArgsAlwaysCompact(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `admin: @role("a") { id: 1 }`)
	got := serializer.Serialize(doc, serializer.Pretty)
	assert.Contains(t, got, `@role("a")`)
}

func TestSerializeQuotedKeyWhenNotBareIdentifier(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `"has space": 1`)
	got := serializer.Serialize(doc, serializer.Compact)
	assert.Equal(t, `{"has space": 1}`, got)
}

func TestSerializeStringEscaping(t *testing.T) {
	t.Parallel()

	doc := ast.New()
	top := ast.NewObject()
	top.Set("s", ast.NewNode(ast.StringValue("a\"b\\c\nd\x01")))
	doc.PushTop(ast.NewNode(ast.ObjectValueOf(top)))

	got := serializer.Serialize(doc, serializer.Compact)
	assert.Equal(t, "{s: \"a\\\"b\\\\c\\nd\\u0001\"}", got)
}

// TestTripleQuotedNewlineRoundTripTensionIsKnown documents a known gap in
// §8 invariant 1 (round-trip structural equality): a String carrying a
// real 0x0A byte — only producible from a triple-quoted literal, since a
// triple-quoted body has no escape processing — serializes to the short
// escape \n. Re-parsing that output retains \n verbatim as two-character
// escaped text per the lexer's retention rule for quoted strings (see
// internal/lexer/strings.go), rather than decoding it back to a real
// newline. The C reference has the same retain-escapes design and shares
// this gap; it is not fixed here, only pinned down by this test so a
// future regression in either direction is visible.
func TestTripleQuotedNewlineRoundTripTensionIsKnown(t *testing.T) {
	t.Parallel()

	doc1 := mustParse(t, "s: \"\"\"line one\nline two\"\"\"")
	real := doc1.GetKey("s").Value.AsString()
	require.Contains(t, real, "\n")

	out := serializer.Serialize(doc1, serializer.Compact)
	assert.Contains(t, out, `\n`)

	doc2 := mustParse(t, out)
	reparsed := doc2.GetKey("s").Value.AsString()
	assert.Equal(t, `line one\nline two`, reparsed)
	assert.NotEqual(t, real, reparsed, "triple-quoted real newlines do not round-trip through re-parse, by design")
}

func TestRoundTripStructuralEquality(t *testing.T) {
	t.Parallel()

	src := `$schema: "meta.xcdn",

config: {
  name: "demo",
  ids: [1, 2, 3],
  timeout: r"PT30S",
}`
	doc1 := mustParse(t, src)
	pretty := serializer.Serialize(doc1, serializer.Pretty)
	doc2 := mustParse(t, pretty)

	diff := cmp.Diff(doc1, doc2, cmp.AllowUnexported(ast.Value{}, ast.ObjectValue{}))
	assert.Empty(t, diff, "parse -> serialize -> parse must be structurally equal")
}
