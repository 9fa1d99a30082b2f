package grammar

import (
	"net/url"

	"braces.dev/errtrace"
)

// ResolveReference merges a relative reference against a base URI string
// following the RFC 3986 base+relative merge rules (remove-dot-segments,
// inherit missing components from the base). It delegates to [net/url].
func ResolveReference(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", errtrace.Wrap(newMalformedInputErr(err))
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", errtrace.Wrap(newMalformedInputErr(err))
	}
	return b.ResolveReference(r).String(), nil
}
