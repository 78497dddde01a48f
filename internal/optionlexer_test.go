package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexOptions(t *testing.T) {
	cases := []struct {
		name       string
		input      string
		wantArgs   []ArgModel
		wantKwargs []KwArg
	}{
		{
			name:     "single positional",
			input:    "user",
			wantArgs: []ArgModel{{Value: "user"}},
		},
		{
			name:     "multiple positional collapse whitespace",
			input:    "name   \"Customer\"",
			wantArgs: []ArgModel{{Value: "name"}, {Value: "Customer", Quoted: true}},
		},
		{
			name:       "kwarg",
			input:      "class=active",
			wantKwargs: []KwArg{{Key: "class", Value: ArgModel{Value: "active"}}},
		},
		{
			name:       "kwarg with quoted value",
			input:      `class="is active"`,
			wantKwargs: []KwArg{{Key: "class", Value: ArgModel{Value: "is active", Quoted: true}}},
		},
		{
			name:       "mixed positional and kwarg preserves order",
			input:      "user a=1 b=2",
			wantArgs:   []ArgModel{{Value: "user"}},
			wantKwargs: []KwArg{{Key: "a", Value: ArgModel{Value: "1"}}, {Key: "b", Value: ArgModel{Value: "2"}}},
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args, kwargs, err := LexOptions(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.wantArgs, args)
			assert.Equal(t, tc.wantKwargs, kwargs)
		})
	}
}

func TestLexOptions_UnterminatedQuote(t *testing.T) {
	_, _, err := LexOptions(`name "Customer`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated quoted string")
}

func TestSplitOnFirstSpaceSeparator(t *testing.T) {
	head, tail, ok := splitOnFirstSpaceSeparator("if user")
	assert.True(t, ok)
	assert.Equal(t, "if", head)
	assert.Equal(t, "user", tail)

	head, tail, ok = splitOnFirstSpaceSeparator("solo")
	assert.False(t, ok)
	assert.Equal(t, "solo", head)
	assert.Equal(t, StringValueEmpty, tail)
}
