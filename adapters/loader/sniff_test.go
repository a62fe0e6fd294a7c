package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSniffDelimiter(t *testing.T) {
	cases := []struct {
		name string
		text string
		want rune
	}{
		{"comma", "a,b,c\n1,2,3\n", ','},
		{"semicolon", "a;b;c\n1;2;3\n", ';'},
		{"tab", "a\tb\n1\t2\n", '\t'},
		{"pipe", "a|b\n1|2\n", '|'},
		{"semicolon with decimal commas", "a;b\n1,5;2,5\n3,5;4\n", ';'},
		{"quoted commas ignored", "name;score\n\"Smith, J\";3\n", ';'},
		{"single column", "PTS\n1\n2\n", ','},
		{"empty", "", ','},
		{"inconsistent falls back to header", "a;b;c\n1;2\n", ';'},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, string(tc.want), string(SniffDelimiter(tc.text)))
		})
	}
}
