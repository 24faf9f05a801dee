// SPDX-License-Identifier: MIT

package lattice

import (
	"encoding/binary"
	"math"

	"github.com/google/uuid"
)

// Element is the constraint on element codes: comparable (usable as map key)
// and totally ordered through Cmp. lukechampine.com/uint128.Uint128 satisfies it.
type Element[X any] interface {
	comparable
	Cmp(X) int
}

// Hash is the 128-bit structural fingerprint of a lattice instance.
// Two lattices built from identical structural input share the same Hash.
type Hash [16]byte

// String renders the hash in canonical UUID form.
func (h Hash) String() string { return uuid.UUID(h).String() }

// MarshalText implements encoding.TextMarshaler.
func (h Hash) MarshalText() ([]byte, error) { return uuid.UUID(h).MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash) UnmarshalText(b []byte) error {
	var u uuid.UUID
	if err := u.UnmarshalText(b); err != nil {
		return err
	}
	*h = Hash(u)

	return nil
}

// hashNamespace scopes every lattice hash; fixed so hashes are stable across runs.
var hashNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("github.com/katalvlaran/evidence/lattice"))

// Fingerprint accumulates the canonical byte form of a lattice structure.
// Every field is length- or width-prefixed, so distinct structures never
// collide on concatenation.
type Fingerprint struct {
	buf []byte
}

// NewFingerprint starts a fingerprint for the given lattice kind.
func NewFingerprint(kind string) *Fingerprint {
	f := &Fingerprint{buf: make([]byte, 0, 256)}
	f.String(kind)

	return f
}

// String appends a length-prefixed string.
func (f *Fingerprint) String(s string) *Fingerprint {
	f.buf = binary.BigEndian.AppendUint32(f.buf, uint32(len(s)))
	f.buf = append(f.buf, s...)

	return f
}

// Int appends a fixed-width integer.
func (f *Fingerprint) Int(n int) *Fingerprint {
	f.buf = binary.BigEndian.AppendUint64(f.buf, uint64(n))

	return f
}

// Float appends the IEEE-754 bit pattern of v.
func (f *Fingerprint) Float(v float64) *Fingerprint {
	f.buf = binary.BigEndian.AppendUint64(f.buf, math.Float64bits(v))

	return f
}

// Sum derives the Hash of everything appended so far.
func (f *Fingerprint) Sum() Hash {
	return Hash(uuid.NewSHA1(hashNamespace, f.buf))
}

// SafeElement is an element code tagged with the hash of the lattice that
// produced it. It is a plain value; copying is free.
type SafeElement[X Element[X]] struct {
	code X
	hash Hash
}

// Unchecked tags code with h without verifying membership.
// The caller guarantees code belongs to the lattice identified by h.
func Unchecked[X Element[X]](code X, h Hash) SafeElement[X] {
	return SafeElement[X]{code: code, hash: h}
}

// Code returns the raw element code.
func (e SafeElement[X]) Code() X { return e.code }

// Hash returns the hash of the lattice the element belongs to.
func (e SafeElement[X]) Hash() Hash { return e.hash }

// Cmp orders elements by code.
func (e SafeElement[X]) Cmp(o SafeElement[X]) int { return e.code.Cmp(o.code) }

// WeightedLeaf pairs a generating atom with its prior weight.
type WeightedLeaf[X Element[X]] struct {
	Element SafeElement[X]
	Weight  float64
}
