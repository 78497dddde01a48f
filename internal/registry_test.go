package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_FallbacksNeverAbsent(t *testing.T) {
	r := NewRegistry(nil)

	out, err := r.LookupHelper("nonexistent")(&TagModel{Name: "firstName"})
	require.NoError(t, err)
	assert.Equal(t, "<%= @firstName %>", out)

	out, err = r.LookupUnescaped()(&TagModel{Name: "firstName"})
	require.NoError(t, err)
	assert.Equal(t, "<%= @firstName %>", out)
}

func TestRegistry_RegisterHelper_MonotoneLastWriteWins(t *testing.T) {
	r := NewRegistry(nil)

	require.NoError(t, r.RegisterHelper("greet", ConstFunc("hi")))
	out, err := r.LookupHelper("greet")(&TagModel{})
	require.NoError(t, err)
	assert.Equal(t, "hi", out)

	require.NoError(t, r.RegisterHelper("greet", ConstFunc("hello")))
	out, err = r.LookupHelper("greet")(&TagModel{})
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestRegistry_RegisterHelper_RejectsInvalidNames(t *testing.T) {
	r := NewRegistry(nil)

	err := r.RegisterHelper("", ConstFunc("x"))
	require.Error(t, err)

	err = r.RegisterHelper(".hidden", ConstFunc("x"))
	require.Error(t, err)
}

func TestRegistry_LookupBlock_Unregistered(t *testing.T) {
	r := NewRegistry(nil)
	_, err := r.LookupBlock("if")(&TagModel{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Block-helper not registered: if")
}

func TestRegistry_LookupPartial_Unregistered(t *testing.T) {
	r := NewRegistry(nil)
	_, err := r.LookupPartial("header")(&TagModel{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Partial not registered: header")
}

func TestRegistry_RegisterPartial_StringBodyIsConstant(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.RegisterPartial("header", "<h1>Hi</h1>"))

	out, err := r.LookupPartial("header")(&TagModel{})
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hi</h1>", out)
}

func TestRegistry_RegisterPartial_RejectsInvalidBody(t *testing.T) {
	r := NewRegistry(nil)
	err := r.RegisterPartial("header", 42)
	require.Error(t, err)
}

func TestRegistry_PrefixNames_ExcludesSentinels(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.RegisterHelper("else", ConstFunc("x")))
	require.NoError(t, r.RegisterBlock("if", ConstFunc("x")))

	names := r.PrefixNames()
	assert.Contains(t, names, "else")
	assert.Contains(t, names, "if")
	assert.NotContains(t, names, NameEscapedFallback)
	assert.NotContains(t, names, NameUnescapedFallback)
}
