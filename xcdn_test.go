package xcdn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xcdn "github.com/gslf/xcdn-go"
	"github.com/gslf/xcdn-go/xcdnerr"
)

func TestParseAndFormatPretty(t *testing.T) {
	t.Parallel()

	doc, err := xcdn.Parse(`name: "demo", ids: [1, 2, 3]`)
	require.NoError(t, err)

	out := xcdn.FormatPretty(doc)
	assert.Contains(t, out, `name: "demo"`)
	assert.Contains(t, out, "\n")
}

func TestParseAndFormatCompact(t *testing.T) {
	t.Parallel()

	doc, err := xcdn.Parse(`name: "demo"`)
	require.NoError(t, err)

	out := xcdn.FormatCompact(doc)
	assert.Equal(t, `{name: "demo"}`, out)
}

func TestParseErrorReturnsNilDocument(t *testing.T) {
	t.Parallel()

	doc, err := xcdn.Parse(`a: {`)
	require.Error(t, err)
	assert.Nil(t, doc)
}

func TestErrorKindOf(t *testing.T) {
	t.Parallel()

	_, err := xcdn.Parse(`a: u"not-a-uuid"`)
	require.Error(t, err)

	kind, ok := xcdn.ErrorKindOf(err)
	require.True(t, ok)
	assert.Equal(t, xcdnerr.InvalidUuid, kind)
}

func TestErrorKindOfNonXcdnError(t *testing.T) {
	t.Parallel()

	_, ok := xcdn.ErrorKindOf(assert.AnError)
	assert.False(t, ok)
}

func TestParseBounded(t *testing.T) {
	t.Parallel()

	doc, err := xcdn.ParseBounded(`name: "demo", trailing garbage`, 12)
	require.NoError(t, err)
	assert.True(t, doc.HasKey("name"))
}

func TestParseBoundedClampsOutOfRangeLength(t *testing.T) {
	t.Parallel()

	doc, err := xcdn.ParseBounded(`name: "demo"`, 10_000)
	require.NoError(t, err)
	assert.True(t, doc.HasKey("name"))

	_, err = xcdn.ParseBounded(`name: "demo"`, -5)
	require.Error(t, err)
}
