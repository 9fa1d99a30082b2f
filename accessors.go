package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/uriwerk/uri/internal/util"
)

// Scheme returns the scheme component, normalized to lower case.
func (u *URI) Scheme() string {
	if u == nil {
		return ""
	}
	u.materialize()
	return u.scheme
}

// SetScheme sets the scheme component. The value is lower-cased and a
// trailing ":" is dropped.
func (u *URI) SetScheme(s string) {
	u.materialize()
	u.scheme = util.LCase(strings.TrimSuffix(util.TrimSP(s), ":"))
	u.invalidate()
}

// User returns the user component, percent-decoded.
func (u *URI) User() string {
	if u == nil {
		return ""
	}
	u.materialize()
	return u.user
}

// SetUser sets the user component.
func (u *URI) SetUser(s string) {
	u.materialize()
	u.user = s
	u.invalidate()
}

// Password returns the password component, percent-decoded.
func (u *URI) Password() string {
	if u == nil {
		return ""
	}
	u.materialize()
	return u.password
}

// SetPassword sets the password component.
func (u *URI) SetPassword(s string) {
	u.materialize()
	u.password = s
	u.invalidate()
}

// Host returns the host component, normalized to lower case and without
// IPv6 brackets.
func (u *URI) Host() string {
	if u == nil {
		return ""
	}
	u.materialize()
	return u.host
}

// SetHost sets the host component. The value is lower-cased and IPv6
// brackets are stripped, rendering adds them back when needed.
func (u *URI) SetHost(s string) {
	u.materialize()
	u.host = normalizeHost(util.TrimSP(s))
	u.invalidate()
}

// Port returns the port and a flag indicating whether it is set.
func (u *URI) Port() (uint16, bool) {
	if u == nil {
		return 0, false
	}
	u.materialize()
	return u.port, u.hasPort
}

// SetPort sets the port component. A port outside [0, 65535] fails with
// [ErrInvalidValue] and leaves the URI unchanged.
func (u *URI) SetPort(port int) error {
	if port < 0 || port > 65535 {
		return errtrace.Wrap(newInvalidValueErr("port %d out of [0, 65535]", port))
	}
	u.materialize()
	u.port, u.hasPort = uint16(port), true
	u.invalidate()
	return nil
}

// DelPort removes the port component.
func (u *URI) DelPort() {
	u.materialize()
	u.port, u.hasPort = 0, false
	u.invalidate()
}

// Path returns the path component.
func (u *URI) Path() Path {
	if u == nil {
		return Path{}
	}
	u.materialize()
	return u.path.clone()
}

// SetPath sets the path component.
func (u *URI) SetPath(p Path) {
	u.materialize()
	u.path = p.clone()
	u.invalidate()
}

// Fragment returns the fragment component.
func (u *URI) Fragment() string {
	if u == nil {
		return ""
	}
	u.materialize()
	return u.fragment
}

// SetFragment sets the fragment component.
func (u *URI) SetFragment(s string) {
	u.materialize()
	u.fragment = strings.TrimPrefix(s, "#")
	u.invalidate()
}

// Query returns the query component in its mapping form, creating an empty
// mapping when the URI has no query. It returns nil while the query is
// opaque, use [URI.RawQuery] to read the opaque text.
//
// The returned mapping is live: prefer the Query* methods on URI for
// mutation, they keep the cached canonical string coherent.
func (u *URI) Query() *Values {
	if u == nil {
		return nil
	}
	u.materialize()
	if u.opaque {
		return nil
	}
	if u.query == nil {
		u.query = NewValues()
	}
	return u.query
}

// SetQuery sets the query component to the given mapping, clearing any
// opaque state. A nil value removes the query.
func (u *URI) SetQuery(vals *Values) {
	u.materialize()
	u.query, u.rawQuery, u.opaque = vals, "", false
	u.invalidate()
}
