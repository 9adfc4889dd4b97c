package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomHex(t *testing.T) {
	for _, length := range []int{1, 8, 31, 32} {
		s, err := GenerateRandomHex(length)
		require.NoError(t, err)
		assert.Len(t, s, length)
		assert.Regexp(t, `^[0-9a-f]*$`, s)
	}
}

func TestGenerateEditToken_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateEditToken()
		require.NoError(t, err)
		assert.Len(t, token, 32)
		assert.False(t, seen[token], "token generated twice")
		seen[token] = true
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Trims", "  Lisboa  ", "Lisboa"},
		{"Collapses whitespace", "Rua   das\t\tFlores", "Rua das Flores"},
		{"Control chars", "Porto\x00Centro", "Porto Centro"},
		{"Unicode kept", "São João", "São João"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeString(tt.input))
		})
	}
}

func TestRuneLenAndContainsFold(t *testing.T) {
	assert.Equal(t, 4, RuneLen("João"))
	assert.True(t, ContainsFold("Hospital de Leiria", "leiria"))
	assert.False(t, ContainsFold("Coimbra", "porto"))
	assert.True(t, AnyContainsFold("ana", "Rui", "Mariana"))
	assert.False(t, AnyContainsFold("ana", "Rui", "Pedro"))
}
