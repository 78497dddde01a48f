package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateVarDefault(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"single segment", "firstName", "@firstName"},
		{"multi segment", "user.profile.firstName", "get_in(@user, [:profile, :firstName])"},
		{"root prefix stripped, single segment", "@root.supportPhone", "@supportPhone"},
		{"root prefix stripped, multi segment", "@root.user.name", "get_in(@user, [:name])"},
		{"this-prefixed single segment has no @", "this", "this"},
		{"this-prefixed multi segment has no @", "this.items", "get_in(this, [:items])"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TranslateVarDefault(tc.in))
		})
	}
}

func TestTranslateArg(t *testing.T) {
	quoted := ArgModel{Value: "Customer", Quoted: true}
	assert.Equal(t, `"Customer"`, TranslateArg(quoted, TranslateVarDefault))

	unquoted := ArgModel{Value: "name"}
	assert.Equal(t, "@name", TranslateArg(unquoted, TranslateVarDefault))
}
