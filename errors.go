package uri

import "github.com/uriwerk/uri/internal/errorutil"

const (
	// ErrUnknownComponent is returned when a component name supplied to [New]
	// or [URI.Resolve] is not a recognized component.
	ErrUnknownComponent errorutil.Error = "unknown URI component"

	// ErrInvalidValue is returned when a component setter receives a value that
	// cannot be normalized into the component's type. The previous value and
	// the cache state are left unchanged.
	ErrInvalidValue errorutil.Error = "invalid component value"

	// ErrOpaqueQuery is returned by query mapping operations while the query
	// is stored as an opaque, non form-encoded string. Overwriting the query
	// with a decodable string restores mapping behavior.
	ErrOpaqueQuery errorutil.Error = "query is not form-encoded"
)

func newUnknownComponentErr(name string) error {
	return errorutil.NewWrapperError(ErrUnknownComponent, "%q", name) //errtrace:skip
}

func newInvalidValueErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidValue, args...) //errtrace:skip
}

func newOpaqueQueryErr(op string) error {
	return errorutil.NewWrapperError(ErrOpaqueQuery, "cannot %s", op) //errtrace:skip
}
