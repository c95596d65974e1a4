package application

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	shareCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	shareCodeLength   = 7
)

func newID() string {
	return uuid.NewString()
}

// newShareCode returns the short public code used in share links.
func newShareCode() (string, error) {
	return gonanoid.Generate(shareCodeAlphabet, shareCodeLength)
}
