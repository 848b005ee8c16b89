// Package vault obfuscates stored passwords with a reversible XOR transform.
// This is deliberately not real encryption: the persisted value merely avoids
// keeping plaintext in the state file, and the CLI warns users accordingly.
package vault

import (
	"encoding/base64"
	"errors"
)

var ErrEmptyKey = errors.New("master key must not be empty")

// Obfuscate XORs plaintext against the master key and base64-encodes the
// result so it is safe to embed in the JSON state.
func Obfuscate(plaintext, masterKey string) (string, error) {
	if masterKey == "" {
		return "", ErrEmptyKey
	}
	return base64.StdEncoding.EncodeToString(xor([]byte(plaintext), []byte(masterKey))), nil
}

// Reveal reverses Obfuscate with the same master key.
func Reveal(obfuscated, masterKey string) (string, error) {
	if masterKey == "" {
		return "", ErrEmptyKey
	}
	data, err := base64.StdEncoding.DecodeString(obfuscated)
	if err != nil {
		return "", err
	}
	return string(xor(data, []byte(masterKey))), nil
}

func xor(data, key []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out
}
