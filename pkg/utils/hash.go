package utils

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"
)

// HashFunction names a digest supported by GetHash.
type HashFunction string

const (
	MD5    HashFunction = "md5"
	SHA1   HashFunction = "sha1"
	SHA256 HashFunction = "sha256"
)

// GetHash returns the hex digest of text.
func GetHash(text string, fn HashFunction) (string, error) {
	var h hash.Hash
	switch fn {
	case MD5:
		h = md5.New()
	case SHA1:
		h = sha1.New()
	case SHA256:
		h = sha256.New()
	default:
		return "", fmt.Errorf("unsupported hash function %q", fn)
	}
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashURL fingerprints a URL for deduplication: the http(s) prefix is dropped,
// the rest lowercased and transliterated, then MD5-hashed. Combine it with
// CanonicalLink to collapse links that redirect to the same page.
func HashURL(rawURL string) string {
	stripped := HTTPRegex.ReplaceAllString(strings.ToLower(rawURL), "")
	sum := md5.Sum([]byte(Transliterate(stripped)))
	return hex.EncodeToString(sum[:])
}
