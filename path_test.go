package strlit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocatePath(t *testing.T) {
	doc := []byte(`{"a": {"b": "x\"y"}, "n": 1}`)

	target, err := LocatePath(doc, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, `x\"y`, target.Body)
	assert.Equal(t, target.Body, string(doc[target.Offsets[0]:target.Offsets[1]]))
	assert.Equal(t, OffsetToPos(string(doc), target.Offsets[0]), target.Range.Start)
	assert.Equal(t, OffsetToPos(string(doc), target.Offsets[1]), target.Range.End)
}

func TestLocatePathMultiline(t *testing.T) {
	doc := []byte("{\n  \"payload\": \"{\\\"n\\\":1}\"\n}")

	target, err := LocatePath(doc, "payload")
	require.NoError(t, err)
	assert.Equal(t, `{\"n\":1}`, target.Body)
	assert.Equal(t, Pos{Row: 1, Col: 14}, target.Range.Start)
}

func TestLocatePathNotString(t *testing.T) {
	doc := []byte(`{"n": 1}`)
	_, err := LocatePath(doc, "n")
	assert.ErrorIs(t, err, ErrNotString)
}

func TestLocatePathMissingKey(t *testing.T) {
	doc := []byte(`{"n": 1}`)
	_, err := LocatePath(doc, "missing")
	assert.Error(t, err)
}

func TestSpliceOffsets(t *testing.T) {
	doc := `{"payload": "old"}`
	got := SpliceOffsets(doc, 13, 16, "new")
	assert.Equal(t, `{"payload": "new"}`, got)
}
