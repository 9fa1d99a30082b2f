package uri

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/uriwerk/uri/internal/ioutil"
	"github.com/uriwerk/uri/internal/util"
)

// RenderOptions contains options for rendering URIs.
type RenderOptions struct {
	// Safe omits the password from the rendered form. Use it for any
	// representation intended for display or logging.
	Safe bool `json:"safe,omitempty"`
}

// RenderTo writes the canonical form of the URI to the provided writer.
func (u *URI) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}
	u.materialize()
	safe := opts != nil && opts.Safe

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if u.scheme != "" {
		cw.Fprint(u.scheme, ":")
	}
	if authority := u.renderAuthority(safe); authority != "" {
		cw.Fprint("//", authority)
	}
	cw.WriteString(u.path.String())
	if qs := u.RawQuery(); qs != "" {
		cw.Fprint("?", qs)
	}
	if u.fragment != "" {
		cw.Fprint("#", u.fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string form of the URI with the given options.
func (u *URI) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the canonical string of the URI, password included.
// The result is cached until the next component mutation.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	if u.cached != nil {
		return *u.cached
	}
	s := u.Render(nil)
	u.cached = &s
	return s
}

// SafeString returns the canonical string with the password omitted.
// Unlike [URI.String] it is never cached, the cache holds the full form.
func (u *URI) SafeString() string {
	return u.Render(&RenderOptions{Safe: true})
}

// Bytes returns the canonical string of the URI as UTF-8 bytes.
func (u *URI) Bytes() []byte {
	return []byte(u.String())
}

// IsZero reports whether the canonical string of the URI is empty.
func (u *URI) IsZero() bool {
	return u == nil || u.String() == ""
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	*u = *Parse(text)
	return nil
}
