package duckdb

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// FingerprintRows returns a SHA-256 hex digest of the JSON encoding of rows.
// Identical content always yields the same key, and field boundaries are
// part of the hashed form.
func FingerprintRows(rows [][]string) (string, error) {
	data, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("encode rows: %w", err)
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}
