package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text passes through", "kopi susu", "kopi susu"},
		{"percent is literal", "100%", `100\%`},
		{"underscore is literal", "stock_adjustment", `stock\_adjustment`},
		{"backslash is escaped first", `a\b`, `a\\b`},
		{"mixed metacharacters", `50%_\off`, `50\%\_\\off`},
		{"empty stays empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.input))
		})
	}
}
