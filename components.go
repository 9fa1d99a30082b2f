package uri

import (
	"braces.dev/errtrace"
)

// componentOrder fixes the application order of named components: compound
// names first, so a scalar supplied next to a compound one wins.
var componentOrder = []string{
	"authority", "auth", "safe_auth",
	"scheme", "user", "password", "host", "port",
	"path", "query", "fragment",
}

// constructParts are the component names recognized by [New].
var constructParts = map[string]bool{
	"scheme": true, "user": true, "password": true, "host": true,
	"port": true, "path": true, "query": true, "fragment": true,
	"authority": true, "auth": true, "safe_auth": true,
}

// resolveParts are the component names recognized by [URI.Resolve]:
// the primary names only, no safe variants.
var resolveParts = map[string]bool{
	"scheme": true, "user": true, "password": true, "host": true,
	"port": true, "path": true, "query": true, "fragment": true,
	"authority": true, "auth": true,
}

// applyComponents sets the given components in canonical order.
// Name validation is up to the caller.
func (u *URI) applyComponents(parts Components) error {
	for _, name := range componentOrder {
		val, ok := parts[name]
		if !ok {
			continue
		}
		if err := u.setComponent(name, val); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

// setComponent assigns one named component. It accepts the component's
// native typed value or a string to be parsed into it; nil resets the
// component to its default.
func (u *URI) setComponent(name string, val any) error {
	switch name {
	case "scheme":
		s, err := stringValue(name, val)
		if err != nil {
			return errtrace.Wrap(err)
		}
		u.SetScheme(s)
	case "user":
		s, err := stringValue(name, val)
		if err != nil {
			return errtrace.Wrap(err)
		}
		u.SetUser(s)
	case "password":
		s, err := stringValue(name, val)
		if err != nil {
			return errtrace.Wrap(err)
		}
		u.SetPassword(s)
	case "host":
		s, err := stringValue(name, val)
		if err != nil {
			return errtrace.Wrap(err)
		}
		u.SetHost(s)
	case "port":
		return errtrace.Wrap(u.setPortValue(val))
	case "path":
		switch v := val.(type) {
		case nil:
			u.SetPath(Path{})
		case Path:
			u.SetPath(v)
		case *Path:
			u.SetPath(*v)
		case string:
			u.SetPath(ParsePath(v))
		default:
			return errtrace.Wrap(newInvalidValueErr("path value of type %T", val))
		}
	case "query":
		switch v := val.(type) {
		case nil:
			u.SetQuery(nil)
		case *Values:
			u.SetQuery(v)
		case string:
			u.SetRawQuery(v)
		default:
			return errtrace.Wrap(newInvalidValueErr("query value of type %T", val))
		}
	case "fragment":
		s, err := stringValue(name, val)
		if err != nil {
			return errtrace.Wrap(err)
		}
		u.SetFragment(s)
	case "authority":
		s, err := stringValue(name, val)
		if err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(u.SetAuthority(s))
	case "auth":
		s, err := stringValue(name, val)
		if err != nil {
			return errtrace.Wrap(err)
		}
		u.SetAuth(s)
	case "safe_auth":
		// The safe auth view carries the user only.
		s, err := stringValue(name, val)
		if err != nil {
			return errtrace.Wrap(err)
		}
		u.SetUser(s)
	default:
		return errtrace.Wrap(newUnknownComponentErr(name))
	}
	return nil
}

// setPortValue assigns the port from a native integer, port text or nil.
func (u *URI) setPortValue(val any) error {
	switch v := val.(type) {
	case nil:
		u.DelPort()
		return nil
	case int:
		return errtrace.Wrap(u.SetPort(v))
	case int64:
		return errtrace.Wrap(u.SetPort(int(v)))
	case uint16:
		return errtrace.Wrap(u.SetPort(int(v)))
	case string:
		if v == "" {
			u.DelPort()
			return nil
		}
		p, err := parsePort(v)
		if err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(u.SetPort(int(p)))
	default:
		return errtrace.Wrap(newInvalidValueErr("port value of type %T", val))
	}
}

func stringValue(name string, val any) (string, error) {
	switch v := val.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", errtrace.Wrap(newInvalidValueErr("%s value of type %T", name, val))
	}
}

// Del resets the named component to its type default and invalidates the
// cached canonical string.
func (u *URI) Del(name string) error {
	switch name {
	case "scheme":
		u.SetScheme("")
	case "user":
		u.SetUser("")
	case "password":
		u.SetPassword("")
	case "host":
		u.SetHost("")
	case "port":
		u.DelPort()
	case "path":
		u.SetPath(Path{})
	case "query":
		u.SetQuery(nil)
	case "fragment":
		u.SetFragment("")
	case "auth":
		u.SetAuth("")
	case "authority":
		return errtrace.Wrap(u.SetAuthority(""))
	default:
		return errtrace.Wrap(newUnknownComponentErr(name))
	}
	return nil
}
