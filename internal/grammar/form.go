package grammar

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/uriwerk/uri/internal/errorutil"
)

// Error is the grammar error type.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrMalformedInput Error = "malformed input"
	ErrNotFormEncoded Error = "not form-encoded"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// Pair is a decoded key/value pair of a form-encoded query.
type Pair struct {
	Key, Value string
}

// ParseForm decodes a query string of the "key=value&key=value" grammar into
// ordered key/value pairs. A chunk without "=" or with a malformed percent
// escape fails the whole decode, the caller keeps the query as opaque text.
// Empty chunks (as in "a=1&&b=2") are skipped. "+" decodes to a space.
func ParseForm(s string) ([]Pair, error) {
	if s == "" {
		return nil, nil
	}

	var pairs []Pair
	for _, chunk := range strings.Split(s, "&") {
		if chunk == "" {
			continue
		}
		rawKey, rawVal, ok := strings.Cut(chunk, "=")
		if !ok {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrNotFormEncoded, "chunk %q has no separator", chunk))
		}
		key, err := UnescapeStrict(plusToSpace(rawKey))
		if err != nil {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrNotFormEncoded, err))
		}
		val, err := UnescapeStrict(plusToSpace(rawVal))
		if err != nil {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrNotFormEncoded, err))
		}
		pairs = append(pairs, Pair{Key: key, Value: val})
	}
	return pairs, nil
}

// EscapeForm encodes a single form key or value: unreserved chars stay
// literal, a space becomes "+", everything else is percent-escaped.
func EscapeForm(s string) string {
	needed := false
	for i := 0; i < len(s); i++ {
		if !IsFormCharUnreserved(s[i]) {
			needed = true
			break
		}
	}
	if !needed {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case IsFormCharUnreserved(c):
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		}
	}
	return b.String()
}

func plusToSpace(s string) string {
	if !strContainsByte(s, '+') {
		return s
	}
	return strings.ReplaceAll(s, "+", " ")
}
