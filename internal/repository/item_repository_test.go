package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Drill", `%drill%`},
		{"_", `%\_%`},
		{"100%", `%100\%%`},
		{`c:\tools`, `%c:\\tools%`},
		{`a\_b`, `%a\\\_b%`},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, containsPattern(tt.text))
		})
	}
}
