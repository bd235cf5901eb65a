package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashJSON hashes the JSON encoding of v. Schedules are normalized before
// hashing, so equal schedules encode to equal bytes.
func HashJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return Hash(data), nil
}

// hashKey returns "<stage>:<hash of parts>". Parts are encoded as one JSON
// array, so ("a", "bc") and ("ab", "c") give different keys.
func hashKey(stage string, parts ...any) string {
	data, err := json.Marshal(parts)
	if err != nil {
		// NaN and Inf floats do not encode.
		data = fmt.Appendf(nil, "%#v", parts)
	}
	return stage + ":" + Hash(data)
}
