package numo

import "strings"

// DecodeBinary turns a run of '0'/'1' digits into text. Digits are grouped
// into 8-bit MSB-first bytes; a trailing partial group is dropped. Printable
// ASCII is kept, a zero byte becomes a space and anything else is dropped.
func DecodeBinary(digits []byte) string {
	var sb strings.Builder
	for i := 0; i+8 <= len(digits); i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			if digits[i+j] == '1' {
				b |= 1 << (7 - j)
			}
		}
		switch {
		case b >= 32 && b <= 126:
			sb.WriteByte(b)
		case b == 0:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// EncodeBinary is the inverse of DecodeBinary for ASCII text
func EncodeBinary(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) * 8)
	for i := 0; i < len(text); i++ {
		b := text[i]
		for j := 7; j >= 0; j-- {
			if b&(1<<j) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}
