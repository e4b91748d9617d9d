package utils

import "github.com/google/uuid"

// UUIDGenerator issues account identifiers and one-time security tokens.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a time-ordered UUIDv7, falling back to a random UUIDv4 if
// the clock sequence cannot be read.
func (g *UUIDGenerator) NewID() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}

// NewToken returns a random UUIDv4. Tokens must not be guessable, so the
// time-ordered version is never used here.
func (g *UUIDGenerator) NewToken() uuid.UUID {
	return uuid.New()
}
