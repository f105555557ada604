package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short URL-safe random identifier.
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateReference returns a human-shareable reference code, e.g. for
// contact inquiries ("INQ-x7Hq2Ba").
func GenerateReference(prefix string) string {
	return prefix + "-" + GenerateID()
}
