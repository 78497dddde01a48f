package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHelperPrefixMatcher_EmptyIsNil(t *testing.T) {
	assert.Nil(t, NewHelperPrefixMatcher(nil))
	assert.Nil(t, NewHelperPrefixMatcher([]string{"__escaped__", "__unescaped__"}))
}

func TestHelperPrefixMatcher_LongestMatchWins(t *testing.T) {
	m := NewHelperPrefixMatcher([]string{"else", "else if"})

	name, rest, ok := m.Match("else if x")
	assert.True(t, ok)
	assert.Equal(t, "else if", name)
	assert.Equal(t, " x", rest)

	name, rest, ok = m.Match("else")
	assert.True(t, ok)
	assert.Equal(t, "else", name)
	assert.Equal(t, StringValueEmpty, rest)
}

func TestHelperPrefixMatcher_NoMatch(t *testing.T) {
	m := NewHelperPrefixMatcher([]string{"if"})
	_, _, ok := m.Match("unless x")
	assert.False(t, ok)
}

func TestHelperPrefixMatcher_NilReceiverIsSafe(t *testing.T) {
	var m *HelperPrefixMatcher
	_, _, ok := m.Match("anything")
	assert.False(t, ok)
}
