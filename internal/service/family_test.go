package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFamilyCodeShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := newFamilyCode()
		assert.Len(t, code, 6)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, ch), "unexpected char %q", ch)
		}
		seen[code] = true
	}
	// Collisions in 50 draws from 32^6 would be astonishing.
	assert.Greater(t, len(seen), 45)
}
