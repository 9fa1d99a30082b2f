package grammar

import (
	"bytes"

	"braces.dev/errtrace"
)

// Unescape decodes "% HEXDIG HEXDIG" sequences in s.
// Malformed sequences are passed through unchanged.
func Unescape(s string) string {
	if !strContainsByte(s, '%') {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// UnescapeStrict decodes "% HEXDIG HEXDIG" sequences in s and fails on a "%"
// that is not followed by two hex digits. Used by the form-encoded query
// decoder, where a malformed escape makes the whole query opaque.
func UnescapeStrict(s string) (string, error) {
	if !strContainsByte(s, '%') {
		return s, nil
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			if i+2 >= len(s) || !ishex(s[i+1]) || !ishex(s[i+2]) {
				return "", errtrace.Wrap(newMalformedInputErr("invalid percent escape at offset %d", i))
			}
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String(), nil
}

// Escape replaces each char matched by the shouldEscape callback with its hex
// form "% HEXDIG HEXDIG". Existing valid escape sequences are kept as is.
func Escape(s string, shouldEscape func(c byte) bool) string {
	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
			b.WriteByte(s[i+2])
			i += 2
		case shouldEscape(s[i]):
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

func strContainsByte(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return true
		}
	}
	return false
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// IsAlphanumChar checks the alphanum rule.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// IsFormCharUnreserved reports whether c stays literal in a form-encoded
// key or value.
func IsFormCharUnreserved(c byte) bool {
	return IsAlphanumChar(c) || c == '-' || c == '_' || c == '.' || c == '~'
}

var userinfoUnreservedChars = map[byte]bool{
	'-': true, '_': true, '.': true, '~': true,
	'!': true, '$': true, '&': true, '\'': true,
	'(': true, ')': true, '*': true, '+': true,
	',': true, ';': true, '=': true,
}

// IsUserinfoCharUnreserved reports whether c stays literal in the user or
// password component. ":" and "@" are always escaped, they delimit the
// userinfo grammar.
func IsUserinfoCharUnreserved(c byte) bool {
	return IsAlphanumChar(c) || userinfoUnreservedChars[c]
}
