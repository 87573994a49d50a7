package ast

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// base64Value maps each byte of the combined standard/URL-safe base64
// alphabets to its 6-bit value, or -1 if the byte is not part of either
// alphabet. Mixing both alphabets in a single literal is permitted per
// spec §4.4; stdlib's encoding/base64 codecs each accept only one
// alphabet, so this decoder is hand-rolled.
var base64Value [256]int8

func init() {
	for i := range base64Value {
		base64Value[i] = -1
	}
	const std = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	const urlExtra = "-_"
	for i := 0; i < len(std); i++ {
		base64Value[std[i]] = int8(i)
	}
	base64Value['-'] = base64Value['+']
	base64Value['_'] = base64Value['/']
	_ = urlExtra
}

// DecodeBase64Mixed decodes s per spec §4.4: standard and URL-safe
// alphabets may be intermixed, '=' padding is optional, and whitespace
// (space, \n, \r) within the body is ignored. Any other byte is an error.
func DecodeBase64Mixed(s string) ([]byte, error) {
	sig := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ' ', '\n', '\r', '=':
			continue
		default:
			if base64Value[c] < 0 {
				return nil, errInvalidBase64Byte(c)
			}
			sig = append(sig, c)
		}
	}

	n := len(sig)
	out := make([]byte, 0, n*6/8)
	var acc uint32
	var bits int
	for _, c := range sig {
		acc = (acc << 6) | uint32(base64Value[c])
		bits += 6
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>uint(bits)))
		}
	}
	return out, nil
}

type invalidBase64ByteError struct {
	b byte
}

func errInvalidBase64Byte(b byte) error {
	return &invalidBase64ByteError{b: b}
}

func (e *invalidBase64ByteError) Error() string {
	return "invalid base64 byte: " + string(rune(e.b))
}

// EncodeBase64Standard encodes b using the standard alphabet with '='
// padding to a multiple of 4, per spec §4.5.
func EncodeBase64Standard(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// ValidateUUID checks s against spec §4.4: exactly 36 characters, dashes
// at positions 8, 13, 18, 23, and hex everywhere else (case-insensitive).
// The original text is preserved verbatim by the caller; this function
// only validates structure.
func ValidateUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i, c := range []byte(s) {
		switch i {
		case 8, 13, 18, 23:
			if c != '-' {
				return false
			}
		default:
			if !isHexDigit(c) {
				return false
			}
		}
	}
	// google/uuid.Parse provides a second, library-backed confirmation of
	// hex validity and canonical structure for the dash-delimited form.
	_, err := uuid.Parse(s)
	return err == nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IsBareIdentifier reports whether s is a valid unquoted identifier:
// starts with A-Z, a-z, or '_'; continues with the start set plus 0-9
// and '-'.
func IsBareIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i == 0 {
			if !isIdentStart(c) {
				return false
			}
		} else if !isIdentCont(c) {
			return false
		}
	}
	return true
}

func isIdentStart(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_'
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '-'
}

// IsBareIdentifier implements the object-key identifier regex of spec
// §4.5 ([A-Za-z_][A-Za-z0-9_-]*) directly rather than via regexp, to
// match the hot-path, allocation-free style the teacher uses for its
// own identifier check (tokenizer.IsBareIdentifier).
