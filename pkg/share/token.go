// Package share manages share grants and bearer share links on files.
package share

import (
	"crypto/rand"
	"encoding/base64"
)

// linkTokenBytes is the entropy of a link token. 32 bytes gives 256 bits,
// which makes tokens unguessable for the lifetime of any link.
const linkTokenBytes = 32

// GenerateLinkToken returns a URL-safe random token for a share link.
func GenerateLinkToken() (string, error) {
	b := make([]byte, linkTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
