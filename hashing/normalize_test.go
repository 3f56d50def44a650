package hashing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-bcrypt-compat/hashing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, tag, engine string
	}{
		{"$2y$10$abcdefghijklmnopqrstuu", "$2y$", "$2b$10$abcdefghijklmnopqrstuu"},
		{"$2b$10$abcdefghijklmnopqrstuu", "$2b$", "$2b$10$abcdefghijklmnopqrstuu"},
		{"$2a$10$abcdefghijklmnopqrstuu", "$2a$", "$2a$10$abcdefghijklmnopqrstuu"},
		{"$2x$10$abcdefghijklmnopqrstuu", "$2x$", "$2x$10$abcdefghijklmnopqrstuu"},
		{"$2y$", "$2y$", "$2b$"},
		{"$2y", "$2y", "$2y"},
		{"", "", ""},
	}
	for _, tc := range cases {
		tag, engine := hashing.Normalize(tc.in)
		assert.Equal(t, tc.tag, tag, tc.in)
		assert.Equal(t, tc.engine, engine, tc.in)
	}
}

func TestNormalize_OnlyTagChanges(t *testing.T) {
	const field = "$2y$06$DCq7YPn5Rq63x1Lad4cll."
	tag, engine := hashing.Normalize(field)
	assert.Equal(t, field, tag+engine[hashing.TagLength:])
}
