package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parametriclabs/policyd/internal/domain"
)

func TestNewDeriver(t *testing.T) {
	_, err := NewDeriver("")
	assert.Error(t, err)

	d, err := NewDeriver("test-escrow-key")
	require.NoError(t, err)
	assert.NotNil(t, d)
}

func TestEscrowIdentityDeterministic(t *testing.T) {
	d, err := NewDeriver("test-escrow-key")
	require.NoError(t, err)

	authority := domain.Identity(strings.Repeat("ab", 32))
	holder := domain.Identity(strings.Repeat("cd", 32))

	first, err := d.EscrowIdentity(authority, holder)
	require.NoError(t, err)
	second, err := d.EscrowIdentity(authority, holder)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, first.Valid())
	assert.NotEqual(t, authority, first)
	assert.NotEqual(t, holder, first)
}

func TestEscrowIdentityVariesByPairAndKey(t *testing.T) {
	d1, err := NewDeriver("key-one")
	require.NoError(t, err)
	d2, err := NewDeriver("key-two")
	require.NoError(t, err)

	authority := domain.Identity(strings.Repeat("ab", 32))
	holder := domain.Identity(strings.Repeat("cd", 32))
	otherHolder := domain.Identity(strings.Repeat("ef", 32))

	base, err := d1.EscrowIdentity(authority, holder)
	require.NoError(t, err)

	differentHolder, err := d1.EscrowIdentity(authority, otherHolder)
	require.NoError(t, err)
	assert.NotEqual(t, base, differentHolder)

	// Swapped roles must land on a different account
	swapped, err := d1.EscrowIdentity(holder, authority)
	require.NoError(t, err)
	assert.NotEqual(t, base, swapped)

	differentKey, err := d2.EscrowIdentity(authority, holder)
	require.NoError(t, err)
	assert.NotEqual(t, base, differentKey)
}

func TestEscrowIdentityRejectsMalformedInput(t *testing.T) {
	d, err := NewDeriver("test-escrow-key")
	require.NoError(t, err)

	_, err = d.EscrowIdentity(domain.Identity("not-hex"), domain.Identity(strings.Repeat("cd", 32)))
	assert.Error(t, err)
}

func TestCapability(t *testing.T) {
	d, err := NewDeriver("test-escrow-key")
	require.NoError(t, err)

	authority := domain.Identity(strings.Repeat("ab", 32))
	holder := domain.Identity(strings.Repeat("cd", 32))

	cap, err := d.Capability(authority, holder)
	require.NoError(t, err)
	assert.True(t, cap.Valid())

	escrow, err := d.EscrowIdentity(authority, holder)
	require.NoError(t, err)
	assert.Equal(t, escrow, cap.Escrow())

	var zero EscrowCapability
	assert.False(t, zero.Valid())
}

func TestRequireSubject(t *testing.T) {
	identity := domain.Identity(strings.Repeat("ab", 32))

	assert.NoError(t, RequireSubject(string(identity), identity))
	assert.ErrorIs(t, RequireSubject("", identity), domain.ErrUnauthorized)
	assert.ErrorIs(t, RequireSubject(strings.Repeat("cd", 32), identity), domain.ErrUnauthorized)
	// Prefix of the required identity is not a match
	assert.ErrorIs(t, RequireSubject(strings.Repeat("ab", 16), identity), domain.ErrUnauthorized)
}
