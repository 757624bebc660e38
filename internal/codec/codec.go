// Package codec serializes the full application state to a compact,
// URL-safe share token and back. The token is the base64 (URL alphabet,
// unpadded) form of the state's JSON text; encoding the UTF-8 bytes
// directly keeps the round trip lossless for any Unicode content.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"bakerspal/internal/domain"
)

// Encode serializes the state to a URL-safe token
func Encode(state domain.AppState) (string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to serialize state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode parses a share token back into an AppState. It rejects tokens
// that are not valid base64, do not parse to a JSON object, or do not
// contain all four collection keys; callers fall back to an empty state.
func Decode(token string) (domain.AppState, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		// Tolerate padded tokens produced by other encoders.
		if data, err = base64.URLEncoding.DecodeString(token); err != nil {
			return domain.AppState{}, fmt.Errorf("malformed token: %w", err)
		}
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return domain.AppState{}, fmt.Errorf("token does not contain a state object: %w", err)
	}
	for _, key := range []string{"ingredients", "recipes", "sales", "notes"} {
		if _, ok := probe[key]; !ok {
			return domain.AppState{}, fmt.Errorf("token is missing the %q collection", key)
		}
	}

	var state domain.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.AppState{}, fmt.Errorf("failed to parse state: %w", err)
	}
	return state, nil
}
