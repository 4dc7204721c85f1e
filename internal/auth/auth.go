package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/parametriclabs/policyd/internal/domain"
)

// escrowDomainTag separates escrow derivation from any other use of the key
const escrowDomainTag = "escrow"

// Deriver derives the custodial escrow identity for a policy pair. The
// derivation is keyed so only the service can produce it, and deterministic
// so the same pair always maps to the same escrow account.
type Deriver struct {
	key []byte
}

func NewDeriver(key string) (*Deriver, error) {
	if key == "" {
		return nil, errors.New("escrow key must not be empty")
	}
	return &Deriver{key: []byte(key)}, nil
}

// EscrowIdentity computes HMAC-SHA256 over the tagged pair
func (d *Deriver) EscrowIdentity(authority, holder domain.Identity) (domain.Identity, error) {
	if !authority.Valid() || !holder.Valid() {
		return "", domain.ErrUnauthorized
	}

	authorityBytes := authority.Bytes()
	holderBytes := holder.Bytes()

	h := hmac.New(sha256.New, d.key)
	h.Write([]byte(escrowDomainTag))
	h.Write(authorityBytes[:])
	h.Write(holderBytes[:])

	return domain.Identity(hex.EncodeToString(h.Sum(nil))), nil
}

// EscrowCapability proves the caller derived the escrow identity through the
// service key. Outbound transfers from escrow accept only this token, so no
// request-supplied identity can name an escrow as a source.
type EscrowCapability struct {
	escrow domain.Identity
}

// Capability mints the outbound-transfer token for a pair's escrow account
func (d *Deriver) Capability(authority, holder domain.Identity) (EscrowCapability, error) {
	escrow, err := d.EscrowIdentity(authority, holder)
	if err != nil {
		return EscrowCapability{}, err
	}
	return EscrowCapability{escrow: escrow}, nil
}

// Escrow returns the escrow identity this capability was minted for
func (c EscrowCapability) Escrow() domain.Identity {
	return c.escrow
}

// Valid reports whether the capability was minted rather than zero-valued
func (c EscrowCapability) Valid() bool {
	return c.escrow != ""
}

// RequireSubject gates an operation on the authenticated subject matching the
// required identity. Comparison is constant time to keep the gate from
// leaking prefix matches.
func RequireSubject(subject string, required domain.Identity) error {
	if subject == "" {
		return domain.ErrUnauthorized
	}
	if !hmac.Equal([]byte(subject), []byte(required)) {
		return domain.ErrUnauthorized
	}
	return nil
}
