package naming

import (
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// RunIDLen is the length of a run id; 36^25 exceeds 2^128.
const RunIDLen = 25

// NewRunID returns the id attached to every log line of one command run: a
// UUIDv7 written as fixed-width lowercase base36, so ids sort by start time.
func NewRunID() (string, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return EncodeRunID(u), nil
}

// EncodeRunID writes u as a RunIDLen base36 string.
func EncodeRunID(u uuid.UUID) string {
	s := new(big.Int).SetBytes(u[:]).Text(36)
	return strings.Repeat("0", RunIDLen-len(s)) + s
}
