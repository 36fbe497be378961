package domain

import (
	"crypto/rand"

	"github.com/mr-tron/base58"
)

func NewId() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base58.Encode(b)
}
