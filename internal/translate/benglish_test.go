package translate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsBenglish(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"plain latin", "kemon acho", true},
		{"latin with punctuation", "bhalo achi!", true},
		{"mixed case", "Kemon Acho", true},
		{"bengali script", "কেমন আছো", false},
		{"mixed scripts", "hello কেমন", false},
		{"digits disqualify", "room 42", false},
		{"underscore disqualifies", "hello_world", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsBenglish(tc.text))
		})
	}
}
