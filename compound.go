package uri

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/uriwerk/uri/internal/grammar"
	"github.com/uriwerk/uri/internal/util"
)

func shouldEscapeUserinfoChar(c byte) bool { return !grammar.IsUserinfoCharUnreserved(c) }

// Auth returns the authentication view "user[:password]", percent-escaped.
// Empty when the user is empty, the password alone never renders.
func (u *URI) Auth() string {
	if u.User() == "" {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(grammar.Escape(u.user, shouldEscapeUserinfoChar))
	if u.password != "" {
		sb.WriteString(":")
		sb.WriteString(grammar.Escape(u.password, shouldEscapeUserinfoChar))
	}
	return sb.String()
}

// SafeAuth returns the authentication view with the password always omitted.
func (u *URI) SafeAuth() string {
	if u.User() == "" {
		return ""
	}
	return grammar.Escape(u.user, shouldEscapeUserinfoChar)
}

// SetAuth assigns the authentication view from "user[:password]" text,
// splitting at the first ":" and percent-decoding both parts.
func (u *URI) SetAuth(s string) {
	usr, pwd, _ := grammar.SplitUserinfo(s)
	u.materialize()
	u.user = grammar.Unescape(usr)
	u.password = grammar.Unescape(pwd)
	u.invalidate()
}

// Authority returns the authority view "user[:password]@host[:port]".
// The auth segment is omitted entirely when the user is empty.
func (u *URI) Authority() string {
	return u.renderAuthority(false)
}

// SafeAuthority returns the authority view with the password omitted,
// for any representation intended for display or logging.
func (u *URI) SafeAuthority() string {
	return u.renderAuthority(true)
}

func (u *URI) renderAuthority(safe bool) string {
	if u == nil {
		return ""
	}
	u.materialize()

	var auth string
	if safe {
		auth = u.SafeAuth()
	} else {
		auth = u.Auth()
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if auth != "" {
		sb.WriteString(auth)
		sb.WriteString("@")
	}
	sb.WriteString(armorHost(u.host))
	if u.hasPort {
		sb.WriteString(":")
		sb.WriteString(portText(u.port))
	}
	return sb.String()
}

// SetAuthority assigns the authority view from "user:password@host:port"
// text using the inverse of the serialization grammar. A malformed port
// fails with [ErrInvalidValue] before any component is assigned.
func (u *URI) SetAuthority(s string) error {
	userinfo, host, portStr, hasUserinfo := grammar.SplitAuthority(s)

	var (
		port    uint16
		hasPort bool
	)
	if portStr != "" {
		p, err := parsePort(portStr)
		if err != nil {
			return errtrace.Wrap(err)
		}
		port, hasPort = p, true
	}

	u.materialize()
	if hasUserinfo {
		usr, pwd, _ := grammar.SplitUserinfo(userinfo)
		u.user = grammar.Unescape(usr)
		u.password = grammar.Unescape(pwd)
	} else {
		u.user, u.password = "", ""
	}
	u.host = normalizeHost(host)
	u.port, u.hasPort = port, hasPort
	u.invalidate()
	return nil
}

// Summary returns the minimal "host+path" view of the URI.
func (u *URI) Summary() string {
	if u == nil {
		return ""
	}
	u.materialize()
	return armorHost(u.host) + u.path.String()
}

// Base returns the resolution root of the URI: "scheme://authority/".
func (u *URI) Base() string {
	if u == nil {
		return ""
	}
	u.materialize()

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if u.scheme != "" {
		sb.WriteString(u.scheme)
		sb.WriteString(":")
	}
	sb.WriteString("//")
	sb.WriteString(u.Authority())
	sb.WriteString("/")
	return sb.String()
}

// JoinPath returns a new URI with the segment appended to the path and the
// query and fragment cleared. It is the "uri / segment" operation.
func (u *URI) JoinPath(seg string) *URI {
	u.materialize()
	res := u.Clone()
	res.path = u.path.Join(seg)
	res.query, res.rawQuery, res.opaque = nil, "", false
	res.fragment = ""
	res.invalidate()
	return res
}

// WithNetloc returns a new URI keeping only the scheme of the receiver and
// taking everything else from the given network-location text. A leading
// "scheme://" on the argument is stripped. It is the "uri // netloc"
// operation.
func (u *URI) WithNetloc(netloc string) *URI {
	if i := strings.Index(netloc, "://"); i >= 0 {
		netloc = netloc[i+3:]
	}
	return Parse(u.Scheme() + "://" + netloc)
}

func portText(p uint16) string { return strconv.Itoa(int(p)) }

func armorHost(host string) string {
	if strings.Contains(host, ":") {
		return "[" + host + "]"
	}
	return host
}
