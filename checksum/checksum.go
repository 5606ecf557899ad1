// Package checksum implements EIP-55 mixed-case address checksumming.
//
// The casing of each hex letter encodes one bit of the keccak-256 digest
// of the lowercase address, so a single-character typo is detectable by
// any EIP-55 aware consumer. Encode is pure and deterministic; the same
// input always yields the same output.
package checksum

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ErrInvalidAddress reports input that is not a 20-byte hex address.
// Callers must treat this as fatal for the value in question: passing the
// original string through instead would hand a corrupted address to
// whatever consumes it.
var ErrInvalidAddress = errors.New("invalid address")

const addressHexLen = 40

// Encode returns the EIP-55 checksummed form of address, 0x-prefixed.
// The input may carry an optional 0x prefix and any letter casing; after
// stripping the prefix it must be exactly 40 hex characters, otherwise
// Encode fails with ErrInvalidAddress.
func Encode(address string) (string, error) {
	lower, err := normalize(address)
	if err != nil {
		return "", err
	}

	// The digest is keccak-256 of the lowercase hex string itself (its
	// ASCII bytes), not of the decoded 20 address bytes.
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	digest := h.Sum(nil)

	buf := []byte(lower)
	for i := 0; i < len(buf); i++ {
		if buf[i] < 'a' {
			// digits carry no checksum bit
			continue
		}
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if nibble >= 8 {
			buf[i] -= 'a' - 'A'
		}
	}
	return "0x" + string(buf), nil
}

// Verify reports whether address carries a correct EIP-55 checksum.
// All-lowercase and all-uppercase hex forms carry no checksum information
// and are accepted; any mixed-case form must match Encode's output
// exactly. Malformed input is never valid.
func Verify(address string) bool {
	stripped := strip0x(address)
	if _, err := normalize(address); err != nil {
		return false
	}
	if stripped == strings.ToLower(stripped) || stripped == strings.ToUpper(stripped) {
		return true
	}
	encoded, err := Encode(address)
	if err != nil {
		return false
	}
	return encoded == "0x"+stripped
}

func strip0x(address string) string {
	if len(address) >= 2 && address[0] == '0' && (address[1] == 'x' || address[1] == 'X') {
		return address[2:]
	}
	return address
}

// normalize strips the optional 0x prefix, validates the 40-hex-char
// shape and returns the lowercase hex string.
func normalize(address string) (string, error) {
	stripped := strip0x(address)
	if len(stripped) != addressHexLen {
		return "", fmt.Errorf(
			"%w: %q must be %d hex characters without its 0x prefix, got %d",
			ErrInvalidAddress, address, addressHexLen, len(stripped),
		)
	}
	lower := strings.ToLower(stripped)
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", fmt.Errorf(
				"%w: %q contains a non-hex character at position %d",
				ErrInvalidAddress, address, i,
			)
		}
	}
	return lower, nil
}
