package uri

//go:generate go tool errtrace -w .

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/uriwerk/uri/internal/grammar"
	"github.com/uriwerk/uri/internal/util"
)

// Linker is the capability interface for values that can produce a link to
// themselves. Types implementing it can be passed as the source to [New],
// [URI.Resolve] and [URI.Equal]. *[URI] satisfies it.
type Linker interface {
	Link() string
}

// URIMaker is the capability interface for values that can materialize
// themselves as a URI string. It mirrors path-like types with a MakeURI
// method. *[URI] satisfies it.
type URIMaker interface {
	MakeURI() string
}

// Components is a set of named component values applied on top of a parsed
// source by [New] and [URI.Resolve]. A name outside the recognized set fails
// with [ErrUnknownComponent].
type Components map[string]any

// URI represents a Uniform Resource Identifier, absolute or relative, as a
// mutable value decomposed into typed components.
//
// A URI created from a string parses lazily: no component materializes until
// first accessed. The canonical string form is cached and every component
// mutation invalidates the cache, the next read recomposes it from the
// current component values.
//
// A URI is a plain mutable value with no internal locking. Concurrent
// mutation of the same instance without external synchronization is a data
// race, and even read-only sharing is unsafe while lazy materialization or
// the string cache may still transition.
type URI struct {
	cached *string // canonical string, nil means stale

	src    string
	parsed bool

	scheme   string
	user     string
	password string
	host     string
	port     uint16
	hasPort  bool
	path     Path
	query    *Values
	rawQuery string // opaque query text, only meaningful when opaque is set
	opaque   bool
	fragment string
}

// Parse creates a URI from a raw string or byte slice. Parsing is permissive
// and never fails: components end up holding whatever substrings the
// splitter produced.
func Parse[T ~string | ~[]byte](s T) *URI {
	u := &URI{src: string(s)}
	if u.src != "" {
		c := u.src
		u.cached = &c
	}
	return u
}

// New creates a URI from a source and named component overrides.
//
// The source may be a string, a []byte, another [URI], a [Linker] or a
// [URIMaker]; nil means an empty URI. Components override whatever the
// source parsed to. An unrecognized component name fails with
// [ErrUnknownComponent], a value that cannot be normalized fails with
// [ErrInvalidValue].
func New(source any, parts Components) (*URI, error) {
	for name := range parts {
		if !constructParts[name] {
			return nil, errtrace.Wrap(newUnknownComponentErr(name))
		}
	}

	src, err := sourceString(source)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	u := Parse(src)
	if err := u.applyComponents(parts); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u, nil
}

// sourceString coerces a construction source into a raw URI string.
func sourceString(source any) (string, error) {
	switch v := source.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case *URI:
		return v.String(), nil
	case URI:
		return v.String(), nil
	case Linker:
		return v.Link(), nil
	case URIMaker:
		return v.MakeURI(), nil
	default:
		return "", errtrace.Wrap(newInvalidValueErr("unsupported source type %T", source))
	}
}

// materialize parses the raw source into component slots. It runs at most
// once per URI, on the first component access or mutation.
func (u *URI) materialize() {
	if u.parsed {
		return
	}
	u.parsed = true
	if u.src == "" {
		return
	}
	g := grammar.Split(u.src)
	u.scheme = util.LCase(g.Scheme)
	if g.Authority != "" {
		u.applyAuthority(g.Authority)
	}
	u.path = ParsePath(g.Path)
	u.applyRawQuery(g.Query)
	u.fragment = g.Fragment
}

// applyAuthority fills user, password, host and port from an authority group.
// Parsing is permissive: a non-numeric or out-of-range port in the source is
// dropped rather than rejected.
func (u *URI) applyAuthority(s string) {
	userinfo, host, portText, hasUserinfo := grammar.SplitAuthority(s)
	if hasUserinfo {
		usr, pwd, _ := grammar.SplitUserinfo(userinfo)
		u.user = grammar.Unescape(usr)
		u.password = grammar.Unescape(pwd)
	} else {
		u.user, u.password = "", ""
	}
	u.host = normalizeHost(host)
	u.port, u.hasPort = 0, false
	if portText != "" {
		if p, err := parsePort(portText); err == nil {
			u.port, u.hasPort = p, true
		}
	}
}

// applyRawQuery stores a raw query group: decoded into a mapping when the
// text is form-encoded, kept as opaque text otherwise. Never partially both.
func (u *URI) applyRawQuery(s string) {
	if s == "" {
		u.query, u.rawQuery, u.opaque = nil, "", false
		return
	}
	vals, err := ParseValues(s)
	if err != nil {
		u.query, u.rawQuery, u.opaque = nil, s, true
		return
	}
	u.query, u.rawQuery, u.opaque = vals, "", false
}

// invalidate marks the cached canonical string stale.
func (u *URI) invalidate() { u.cached = nil }

func normalizeHost(host string) string {
	return util.LCase(strings.Trim(host, "[]"))
}

func parsePort(s string) (uint16, error) {
	p, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, errtrace.Wrap(newInvalidValueErr("port %q must be an integer in [0, 65535]", s))
	}
	return uint16(p), nil
}

// Clone returns a deep copy. The copy shares no mutable state with the
// original: mutating one never dirties the other's cache.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	if u.cached != nil {
		c := *u.cached
		u2.cached = &c
	}
	u2.path = u.path.clone()
	u2.query = u.query.Clone()
	return &u2
}

// Equal compares this URI with another for component-wise equality over
// scheme, authority (password included), path, query and fragment.
// Non-URI values are coerced by construction, so query key order never
// matters: "http://h/?a=1&b=2" equals "http://h/?b=2&a=1".
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case *URI:
		other = v
	case URI:
		other = &v
	case string:
		other = Parse(v)
	case []byte:
		other = Parse(v)
	case Linker:
		other = Parse(v.Link())
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	u.materialize()
	other.materialize()
	return u.scheme == other.scheme &&
		u.Authority() == other.Authority() &&
		u.path.Equal(other.path) &&
		u.queryEqual(other) &&
		u.fragment == other.fragment
}

// queryEqual compares query components: mapping equality when both sides
// decoded, raw text equality when either side is opaque.
func (u *URI) queryEqual(other *URI) bool {
	if u.opaque || other.opaque {
		return u.RawQuery() == other.RawQuery()
	}
	if u.query.Len() == 0 && other.query.Len() == 0 {
		return true
	}
	return u.query.Equal(other.query)
}

// Relative reports whether this URI is relative to some context: a URI
// missing a scheme, a host or an absolute path is protocol-, host- or
// path-relative respectively.
func (u *URI) Relative() bool {
	if u == nil {
		return true
	}
	u.materialize()
	return u.scheme == "" || u.host == "" || !u.path.IsAbs()
}

// Resolve merges a relative reference against this URI and applies named
// component overrides, returning a new URI. The receiver is never mutated.
// With a nil reference the result starts from a copy of the receiver.
func (u *URI) Resolve(ref any, parts Components) (*URI, error) {
	for name := range parts {
		if !resolveParts[name] {
			return nil, errtrace.Wrap(newUnknownComponentErr(name))
		}
	}

	refStr, err := sourceString(ref)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	var res *URI
	if refStr != "" {
		s, err := grammar.ResolveReference(u.String(), refStr)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		res = Parse(s)
	} else {
		res = u.Clone()
	}
	if err := res.applyComponents(parts); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return res, nil
}

// Link implements [Linker].
func (u *URI) Link() string { return u.String() }

// MakeURI implements [URIMaker].
func (u *URI) MakeURI() string { return u.String() }
