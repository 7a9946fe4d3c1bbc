package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MB:399", "MB:399"},
		{"SB:C/2011 L4", "SB:C2011 L4"},
		{"SB:2011 AG5*", "SB:2011 AG5"},
		{" MB:-31 ", "MB:-31"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFileName(tt.in), "SanitizeFileName(%q)", tt.in)
	}
}

func TestContentHash(t *testing.T) {
	a := ContentHash([]byte("Earth"))

	assert.Equal(t, a, ContentHash([]byte("Earth")), "hash must be stable")
	assert.NotEqual(t, a, ContentHash([]byte("Mars")))
	assert.Len(t, a, 64)
}
