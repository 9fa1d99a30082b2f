package uri

import (
	"slices"

	"braces.dev/errtrace"

	"github.com/uriwerk/uri/internal/grammar"
	"github.com/uriwerk/uri/internal/util"
)

// Values is an ordered multi-value map for decoded query strings.
// Keys are unique and keep the insertion order of their first occurrence,
// repeated keys accumulate values. Unlike URI schemes and hosts, query keys
// are case-sensitive.
type Values struct {
	keys []string
	m    map[string][]string
}

// NewValues returns an empty [Values].
func NewValues() *Values {
	return &Values{m: map[string][]string{}}
}

// ParseValues decodes a form-encoded query string into [Values].
// It fails with [ErrInvalidValue] when the input is not of the
// "key=value&key=value" grammar.
func ParseValues(s string) (*Values, error) {
	pairs, err := grammar.ParseForm(s)
	if err != nil {
		return nil, errtrace.Wrap(newInvalidValueErr(err))
	}
	vals := NewValues()
	for _, p := range pairs {
		vals.Append(p.Key, p.Value)
	}
	return vals, nil
}

// Len returns the number of distinct keys.
func (vals *Values) Len() int {
	if vals == nil {
		return 0
	}
	return len(vals.keys)
}

// Keys returns the keys in insertion order of their first occurrence.
func (vals *Values) Keys() []string {
	if vals == nil {
		return nil
	}
	return slices.Clone(vals.keys)
}

// Get returns the values associated with the given key.
// If there are no values associated with the key, Get returns nil.
func (vals *Values) Get(key string) []string {
	if vals == nil {
		return nil
	}
	return vals.m[key]
}

// First returns the first value associated with the given key.
func (vals *Values) First(key string) (string, bool) {
	v := vals.Get(key)
	if len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// Last returns the last value associated with the given key.
func (vals *Values) Last(key string) (string, bool) {
	v := vals.Get(key)
	if len(v) == 0 {
		return "", false
	}
	return v[len(v)-1], true
}

// Set sets the key to a single value, replacing any existing values.
// An existing key keeps its position, a new key is appended.
func (vals *Values) Set(key, value string) *Values {
	if !vals.Has(key) {
		vals.keys = append(vals.keys, key)
	}
	vals.m[key] = []string{value}
	return vals
}

// Append adds a value under the key, keeping existing values.
func (vals *Values) Append(key, value string) *Values {
	if !vals.Has(key) {
		vals.keys = append(vals.keys, key)
	}
	vals.m[key] = append(vals.m[key], value)
	return vals
}

// Del deletes the values associated with the key.
func (vals *Values) Del(key string) *Values {
	if vals.Has(key) {
		vals.keys = slices.DeleteFunc(vals.keys, func(k string) bool { return k == key })
		delete(vals.m, key)
	}
	return vals
}

// Has checks whether a given key is present.
func (vals *Values) Has(key string) bool {
	if vals == nil {
		return false
	}
	_, ok := vals.m[key]
	return ok
}

// Clear resets the map.
func (vals *Values) Clear() *Values {
	vals.keys = vals.keys[:0]
	clear(vals.m)
	return vals
}

// Clone returns a deep copy.
func (vals *Values) Clone() *Values {
	if vals == nil {
		return nil
	}
	vals2 := &Values{
		keys: slices.Clone(vals.keys),
		m:    make(map[string][]string, len(vals.m)),
	}
	for k, vs := range vals.m {
		vals2.m[k] = slices.Clone(vs)
	}
	return vals2
}

// Equal compares this map with another for equality.
// Key order is ignored, the value sequence under each key is not.
func (vals *Values) Equal(val any) bool {
	var other *Values
	switch v := val.(type) {
	case *Values:
		other = v
	case Values:
		other = &v
	default:
		return false
	}

	if vals == other {
		return true
	}
	if vals.Len() != other.Len() {
		return false
	}
	for k, vs := range vals.m {
		if !slices.Equal(vs, other.m[k]) {
			return false
		}
	}
	return true
}

// String renders the map in form-encoded form, keys in insertion order.
func (vals *Values) String() string {
	if vals.Len() == 0 {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	first := true
	for _, k := range vals.keys {
		for _, v := range vals.m[k] {
			if !first {
				sb.WriteString("&")
			}
			first = false
			sb.WriteString(grammar.EscapeForm(k))
			sb.WriteString("=")
			sb.WriteString(grammar.EscapeForm(v))
		}
	}
	return sb.String()
}
