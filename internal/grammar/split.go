// Package grammar implements the low-level string primitives consumed by the
// uri package: the permissive five-group splitter, the authority and userinfo
// splitters, percent escaping, form-encoded query codecs and base+reference
// resolution.
//
// Splitting is deliberately permissive: malformed input is never rejected,
// the groups simply hold whatever substrings the scan produced.
package grammar

//go:generate errtrace -w .

import "strings"

// Groups holds the five top-level groups of a URI string.
type Groups struct {
	Scheme    string
	Authority string
	Path      string
	Query     string
	Fragment  string
}

// Split splits a raw URI string into its five top-level groups following the
// RFC 3986 Appendix B decomposition. It never fails.
func Split(s string) Groups {
	var g Groups
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s, g.Fragment = s[:i], s[i+1:]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s, g.Query = s[:i], s[i+1:]
	}
	if i := strings.IndexByte(s, ':'); i > 0 && isSchemeToken(s[:i]) {
		g.Scheme, s = s[:i], s[i+1:]
	}
	if rest, ok := strings.CutPrefix(s, "//"); ok {
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			g.Authority, g.Path = rest[:i], rest[i:]
		} else {
			g.Authority = rest
		}
	} else {
		g.Path = s
	}
	return g
}

// SplitAuthority splits an authority group into userinfo, host and port text.
// The userinfo ends at the last "@", the port starts at the last ":" outside
// an IPv6 bracket literal. The port is returned as raw text, validation is up
// to the caller.
func SplitAuthority(s string) (userinfo, host, port string, hasUserinfo bool) {
	if i := strings.LastIndexByte(s, '@'); i >= 0 {
		userinfo, s, hasUserinfo = s[:i], s[i+1:], true
	}
	if strings.HasPrefix(s, "[") {
		if i := strings.IndexByte(s, ']'); i >= 0 {
			host = s[:i+1]
			if rest := s[i+1:]; strings.HasPrefix(rest, ":") {
				port = rest[1:]
			}
			return userinfo, host, port, hasUserinfo
		}
	}
	if i := strings.LastIndexByte(s, ':'); i >= 0 && !strings.Contains(s[:i], ":") {
		return userinfo, s[:i], s[i+1:], hasUserinfo
	}
	return userinfo, s, "", hasUserinfo
}

// SplitUserinfo splits a userinfo group into user and password at the first ":".
func SplitUserinfo(s string) (user, password string, hasPassword bool) {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

// isSchemeToken reports whether s matches the permissive scheme shape:
// a leading letter followed by letters, digits, "+", "-" or ".".
func isSchemeToken(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case i == 0:
			return false
		case '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.':
		default:
			return false
		}
	}
	return len(s) > 0
}
