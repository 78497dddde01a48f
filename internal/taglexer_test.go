package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulateTag_NameOnly(t *testing.T) {
	tag, residual, err := AccumulateTag(" firstName }}rest", DelimEscapedClose, []byte{'{'}, nil, DelimEscapedOpen, nil)
	require.NoError(t, err)
	assert.Equal(t, "firstName", tag.Name)
	assert.Equal(t, StringValueEmpty, tag.RawOptions)
	assert.Equal(t, "rest", residual)
}

func TestAccumulateTag_NameWithOptions(t *testing.T) {
	tag, residual, err := AccumulateTag(`if user}}body`, DelimEscapedClose, []byte{'{'}, nil, DelimBlockOpen, nil)
	require.NoError(t, err)
	assert.Equal(t, "if", tag.Name)
	assert.Equal(t, "user", tag.RawOptions)
	require.Len(t, tag.Args, 1)
	assert.Equal(t, "user", tag.Args[0].Value)
	assert.Equal(t, "body", residual)
}

func TestAccumulateTag_LongestPrefixMatch(t *testing.T) {
	matcher := NewHelperPrefixMatcher([]string{"else", "else if"})
	tag, _, err := AccumulateTag("else if x}}", DelimEscapedClose, []byte{'{'}, matcher, DelimEscapedOpen, nil)
	require.NoError(t, err)
	assert.Equal(t, "else if", tag.Name)
}

func TestAccumulateTag_UnclosedTag(t *testing.T) {
	_, _, err := AccumulateTag("firstName", DelimEscapedClose, []byte{'{'}, nil, DelimEscapedOpen, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unclosed tag.")
}

func TestAccumulateTag_ForbiddenChar(t *testing.T) {
	_, _, err := AccumulateTag("first{Name}}", DelimEscapedClose, []byte{'{'}, nil, DelimEscapedOpen, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unexpected character")
}

func TestAccumulateTag_CommentPreservesRawContents(t *testing.T) {
	tag, residual, err := AccumulateTag(" a helpful note --}}tail", DelimLongCommentClose, nil, nil, DelimLongCommentOpen, nil)
	require.NoError(t, err)
	assert.Equal(t, " a helpful note ", tag.RawContents)
	assert.Equal(t, "tail", residual)
}

func TestRuneWidthAt(t *testing.T) {
	assert.Equal(t, 0, runeWidthAt(""))
	assert.Equal(t, 1, runeWidthAt("a"))
	assert.Equal(t, len("é"), runeWidthAt("é"))
}
