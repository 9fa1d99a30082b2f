package uri

import (
	"slices"
	"strings"

	"github.com/uriwerk/uri/internal/util"
)

// Path is the path component of a URI: an ordered sequence of segments with
// an absolute flag (leading separator) and a trailing-slash flag.
// The zero value is an empty relative path.
type Path struct {
	segs     []string
	abs      bool
	trailing bool
}

// ParsePath parses a path string into a [Path].
// Empty segments produced by repeated separators are dropped.
func ParsePath(s string) Path {
	var p Path
	if s == "" {
		return p
	}
	p.abs = s[0] == '/'
	p.trailing = len(s) > 1 && s[len(s)-1] == '/'
	for _, seg := range strings.Split(s, "/") {
		if seg != "" {
			p.segs = append(p.segs, seg)
		}
	}
	return p
}

// MakePath builds an absolute [Path] from the given segments.
func MakePath(segs ...string) Path {
	return Path{segs: slices.Clone(segs), abs: true}
}

// IsAbs reports whether the path starts with a separator.
func (p Path) IsAbs() bool { return p.abs }

// IsZero reports whether the path is empty.
func (p Path) IsZero() bool { return !p.abs && !p.trailing && len(p.segs) == 0 }

// Segments returns a copy of the path segments.
func (p Path) Segments() []string { return slices.Clone(p.segs) }

// Dir returns the path without its last segment, keeping the absolute flag.
func (p Path) Dir() Path {
	if len(p.segs) == 0 {
		return Path{abs: p.abs}
	}
	return Path{segs: slices.Clone(p.segs[:len(p.segs)-1]), abs: p.abs, trailing: true}
}

// Join appends a segment and returns the new path, the receiver is unchanged.
// A segment containing separators contributes one path segment per chunk.
// An absolute segment replaces the path entirely, matching posix join rules.
func (p Path) Join(seg string) Path {
	if seg == "" {
		return p.clone()
	}
	if seg[0] == '/' {
		return ParsePath(seg)
	}
	p2 := p.clone()
	p2.trailing = seg[len(seg)-1] == '/'
	for _, s := range strings.Split(seg, "/") {
		if s != "" {
			p2.segs = append(p2.segs, s)
		}
	}
	return p2
}

func (p Path) clone() Path {
	p.segs = slices.Clone(p.segs)
	return p
}

// String renders the path in its canonical form.
func (p Path) String() string {
	if len(p.segs) == 0 {
		if p.abs {
			return "/"
		}
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if p.abs {
		sb.WriteString("/")
	}
	for i, seg := range p.segs {
		if i > 0 {
			sb.WriteString("/")
		}
		sb.WriteString(seg)
	}
	if p.trailing {
		sb.WriteString("/")
	}
	return sb.String()
}

// Equal compares this path with another for equality.
// Accepts [Path], *[Path] or a path string.
func (p Path) Equal(val any) bool {
	var other Path
	switch v := val.(type) {
	case Path:
		other = v
	case *Path:
		if v == nil {
			return false
		}
		other = *v
	case string:
		other = ParsePath(v)
	default:
		return false
	}
	return p.abs == other.abs && p.trailing == other.trailing && slices.Equal(p.segs, other.segs)
}
