package service

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	cpfDomain "github.com/allisson/validacpf/internal/cpf/domain"
)

// fingerprintBytes is the number of hash bytes kept in a fingerprint.
const fingerprintBytes = 8

type cpfFormatter struct {
	fingerprintKey []byte
}

// NewFormatter creates a Formatter. The fingerprint is a keyed BLAKE2b-256 MAC
// so that log readers without the key cannot brute force the masked digits.
// An empty key disables fingerprints.
func NewFormatter(fingerprintKey []byte) Formatter {
	key := fingerprintKey
	if len(key) > blake2b.Size {
		// blake2b accepts at most 64 key bytes; longer keys are hashed down.
		sum := blake2b.Sum512(key)
		key = sum[:]
	}
	return &cpfFormatter{fingerprintKey: key}
}

// Format returns cpfDomain.ErrInvalidCPF for anything the validator rejects.
func (f *cpfFormatter) Format(raw string) (string, error) {
	result := cpfDomain.Check(raw)
	if !result.Valid() {
		return "", cpfDomain.ErrInvalidCPF
	}
	d := result.Normalized
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11], nil
}

// Mask keeps only the last five digits. Inputs that do not normalize to
// eleven digits are fully masked.
func (f *cpfFormatter) Mask(raw string) string {
	d := cpfDomain.Normalize(raw)
	if len(d) != cpfDomain.Length {
		return "***.***.***-**"
	}
	return "***.***." + d[6:9] + "-" + d[9:11]
}

// Fingerprint returns "" when no key is configured.
func (f *cpfFormatter) Fingerprint(raw string) string {
	if len(f.fingerprintKey) == 0 {
		return ""
	}
	h, err := blake2b.New256(f.fingerprintKey)
	if err != nil {
		return ""
	}
	_, _ = h.Write([]byte(cpfDomain.Normalize(raw)))
	return hex.EncodeToString(h.Sum(nil)[:fingerprintBytes])
}
