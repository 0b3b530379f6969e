package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_IssueResolveRevoke(t *testing.T) {
	r := NewRegistry()

	token := r.Issue(42)
	require.NotEmpty(t, token)

	userID, ok := r.Resolve(token)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)

	r.Revoke(token)
	_, ok = r.Resolve(token)
	assert.False(t, ok)
}

func TestRegistry_TokensAreUnique(t *testing.T) {
	r := NewRegistry()
	assert.NotEqual(t, r.Issue(1), r.Issue(1))
}

func TestRegistry_ResolveUnknownToken(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Resolve("nope")
	assert.False(t, ok)
}
