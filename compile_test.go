package hbetl_test

import (
	"testing"

	"github.com/nilfoss/hbetl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_UsesBaseDialect(t *testing.T) {
	out, err := hbetl.Compile("<p>Hello {{ firstName }}</p>")
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello <%= @firstName %></p>", out)
}

func TestCompileWith_SendgridInsert(t *testing.T) {
	out, err := hbetl.CompileWith(`<p>Hello {{insert name "Customer"}}!`, hbetl.SendgridRegistry())
	require.NoError(t, err)
	assert.Equal(t, `<p>Hello <%= @name || "Customer" %>!`, out)
}

func TestCompile_InjectionRejected(t *testing.T) {
	_, err := hbetl.Compile("hello <% evil %> world")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Compilation unsafe")
}

func TestMustCompile_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		hbetl.MustCompile("{{#if a}}unterminated")
	})
}

func TestMustCompile_ReturnsResultOnSuccess(t *testing.T) {
	assert.Equal(t, "plain text", hbetl.MustCompile("plain text"))
}

func TestCompileWith_CustomRegisteredHelper(t *testing.T) {
	reg := hbetl.NewRegistry()
	require.NoError(t, reg.RegisterHelper("shout", func(tag *hbetl.TagModel) (string, error) {
		return "<%= String.upcase(@" + tag.Arg(0).Value + ") %>", nil
	}))

	out, err := hbetl.CompileWith("{{shout name}}", reg)
	require.NoError(t, err)
	assert.Equal(t, "<%= String.upcase(@name) %>", out)
}

func TestCompileWith_RegisteredPartial(t *testing.T) {
	reg := hbetl.DefaultRegistry()
	require.NoError(t, reg.RegisterPartial("footer", "bye {{ firstName }}"))

	out, err := hbetl.CompileWith("{{>footer}}", reg)
	require.NoError(t, err)
	assert.Equal(t, "bye <%= @firstName %>", out)
}
