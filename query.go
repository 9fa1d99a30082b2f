package uri

import (
	"strings"

	"braces.dev/errtrace"
)

// The query mapping adapter. Every operation here requires the query to be
// in its decoded mapping form and fails with [ErrOpaqueQuery] otherwise.
// Mutations invalidate the cached canonical string exactly like a direct
// component write.

// QueryGet returns the values stored under the query key.
func (u *URI) QueryGet(key string) ([]string, error) {
	u.materialize()
	if u.opaque {
		return nil, errtrace.Wrap(newOpaqueQueryErr("get an argument"))
	}
	return u.query.Get(key), nil
}

// QuerySet replaces the values stored under the query key with one value.
func (u *URI) QuerySet(key, value string) error {
	u.materialize()
	if u.opaque {
		return errtrace.Wrap(newOpaqueQueryErr("set an argument"))
	}
	if u.query == nil {
		u.query = NewValues()
	}
	u.query.Set(key, value)
	u.invalidate()
	return nil
}

// QueryAppend adds a value under the query key, keeping existing values.
func (u *URI) QueryAppend(key, value string) error {
	u.materialize()
	if u.opaque {
		return errtrace.Wrap(newOpaqueQueryErr("append an argument"))
	}
	if u.query == nil {
		u.query = NewValues()
	}
	u.query.Append(key, value)
	u.invalidate()
	return nil
}

// QueryDel removes the query key and its values.
func (u *URI) QueryDel(key string) error {
	u.materialize()
	if u.opaque {
		return errtrace.Wrap(newOpaqueQueryErr("delete an argument"))
	}
	if u.query.Has(key) {
		u.query.Del(key)
		u.invalidate()
	}
	return nil
}

// QueryHas reports whether the query key is present.
func (u *URI) QueryHas(key string) (bool, error) {
	u.materialize()
	if u.opaque {
		return false, errtrace.Wrap(newOpaqueQueryErr("check an argument"))
	}
	return u.query.Has(key), nil
}

// QueryKeys returns the query keys in insertion order of first occurrence.
func (u *URI) QueryKeys() ([]string, error) {
	u.materialize()
	if u.opaque {
		return nil, errtrace.Wrap(newOpaqueQueryErr("iterate arguments"))
	}
	return u.query.Keys(), nil
}

// QueryLen returns the number of distinct query keys.
func (u *URI) QueryLen() (int, error) {
	u.materialize()
	if u.opaque {
		return 0, errtrace.Wrap(newOpaqueQueryErr("count arguments"))
	}
	return u.query.Len(), nil
}

// RawQuery returns the serialized query text: the re-encoded mapping, the
// opaque text as stored, or an empty string when the URI has no query.
func (u *URI) RawQuery() string {
	if u == nil {
		return ""
	}
	u.materialize()
	if u.opaque {
		return u.rawQuery
	}
	return u.query.String()
}

// SetRawQuery assigns the query component from raw text: decoded into a
// mapping when form-encoded, stored as opaque text otherwise. It is the way
// back to mapping behavior after the query went opaque.
func (u *URI) SetRawQuery(s string) {
	u.materialize()
	u.applyRawQuery(strings.TrimPrefix(s, "?"))
	u.invalidate()
}
