package ordernum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Format(t *testing.T) {
	number, err := Generate("GS-")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(number, "GS-"))
	assert.Len(t, number, len("GS-")+SuffixLength)

	suffix := strings.TrimPrefix(number, "GS-")
	for _, r := range suffix {
		assert.Contains(t, alphabet, string(r))
	}
}

func TestGenerate_EmptyPrefix(t *testing.T) {
	number, err := Generate("")
	require.NoError(t, err)

	assert.Len(t, number, SuffixLength)
}

func TestGenerate_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		number, err := Generate("GS-")
		require.NoError(t, err)
		seen[number] = true
	}

	// 36^8 possibilities make a collision within 100 draws vanishingly unlikely.
	assert.Len(t, seen, 100)
}
