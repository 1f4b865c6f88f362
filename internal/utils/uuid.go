package utils

import "github.com/google/uuid"

// RequestIDGenerator produces unique identifiers for outgoing HTTP requests.
type RequestIDGenerator struct{}

// NewRequestIDGenerator creates a RequestIDGenerator.
func NewRequestIDGenerator() *RequestIDGenerator {
	return &RequestIDGenerator{}
}

// Generate returns a new unique request identifier. Version 7 UUIDs are
// preferred because they sort by creation time; if the system entropy source
// refuses a V7, a random V4 is used instead.
func (g *RequestIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
