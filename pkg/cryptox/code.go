package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

// CodeLength is the canonical number of digits in a verification code.
const CodeLength = 4

// GenerateCode returns a verification code of CodeLength decimal digits.
// Each digit is drawn independently from crypto/rand; codes are not tracked
// for uniqueness since they are scoped per user and per validity window.
func GenerateCode() (string, error) {
	const digits = "0123456789"

	code := make([]byte, CodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", fmt.Errorf("failed to generate verification code: %w", err)
		}
		code[i] = digits[n.Int64()]
	}
	return string(code), nil
}

// NormalizeCode fixes up verification codes submitted in a non-canonical
// form, e.g. "183", "000183" or "0 183" instead of "0183". It strips all
// whitespace, drops leading zeros and left-pads with zeros to CodeLength
// digits. Stored codes are already canonical; this only applies to
// client-submitted values.
func NormalizeCode(code string) string {
	var b strings.Builder
	for _, r := range code {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	stripped := strings.TrimLeft(b.String(), "0")
	if len(stripped) >= CodeLength {
		return stripped
	}
	return strings.Repeat("0", CodeLength-len(stripped)) + stripped
}
