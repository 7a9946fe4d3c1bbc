package common

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// SanitizeFileName turns an object identifier such as "SB:2001 XR*" into a
// name that is safe to use as a single path element.
func SanitizeFileName(id string) string {
	cleaned := strings.ReplaceAll(id, "*", "")
	cleaned = strings.ReplaceAll(cleaned, "/", "")
	return strings.TrimSpace(cleaned)
}
