package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseRegistry_EachEmitsForComprehension(t *testing.T) {
	p := NewParser(BaseRegistry(nil))
	out, err := p.Parse("{{#each items}}X{{/each}}")
	require.NoError(t, err)
	assert.Equal(t, "<%= for this <- @items do %>X<% end %>\n", out)
}

func TestBaseRegistry_ForeachSameShapeAsEach(t *testing.T) {
	p := NewParser(BaseRegistry(nil))
	out, err := p.Parse("{{#foreach items}}X{{/foreach}}")
	require.NoError(t, err)
	assert.Equal(t, "<%= for this <- @items do %>X<% end %>\n", out)
}

func TestBaseRegistry_EachRequiresCollectionArg(t *testing.T) {
	p := NewParser(BaseRegistry(nil))
	_, err := p.Parse("{{#each}}X{{/each}}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "each helper requires options")
}

// A "{{#raw}}" block's body is transpiled like any block body; the raw
// helper then emits it with no enclosing ETL tags. Only the "{{{{raw}}}}"
// form keeps its body verbatim (see parser_test.go).
func TestBaseRegistry_RawBlockHelperEmitsBodyUnwrapped(t *testing.T) {
	p := NewParser(BaseRegistry(nil))
	out, err := p.Parse("{{#raw}}<b>{{ firstName }}</b>{{/raw}}")
	require.NoError(t, err)
	assert.Equal(t, "<b><%= @firstName %></b>", out)
}

func TestBaseRegistry_Log(t *testing.T) {
	p := NewParser(BaseRegistry(nil))
	out, err := p.Parse("{{log message}}")
	require.NoError(t, err)
	assert.Equal(t, "<% IO.inspect(@message) %>", out)
}

func TestBaseRegistry_IndexAndKey(t *testing.T) {
	p := NewParser(BaseRegistry(nil))

	out, err := p.Parse("{{@index}}")
	require.NoError(t, err)
	assert.Equal(t, "<%= @index %>", out)

	out, err = p.Parse("{{@key}}")
	require.NoError(t, err)
	assert.Equal(t, "<%= @key %>", out)
}

func TestBaseRegistry_IfWithoutElse(t *testing.T) {
	p := NewParser(BaseRegistry(nil))
	out, err := p.Parse("{{#if user}}X{{/if}}")
	require.NoError(t, err)
	assert.Equal(t, "<%= cond do %>\n<% @user -> %>X<% true -> %><% nil %>\n<% end %>\n", out)
}

func TestBaseRegistry_IfRequiresCondition(t *testing.T) {
	p := NewParser(BaseRegistry(nil))
	_, err := p.Parse("{{#if}}X{{/if}}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "if helper requires options")
}
