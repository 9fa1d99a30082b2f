package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/uriwerk/uri"
)

func TestParsePath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		segs  []string
		abs   bool
		str   string
	}{
		{"", nil, false, ""},
		{"/", nil, true, "/"},
		{"/a/b", []string{"a", "b"}, true, "/a/b"},
		{"/a/b/", []string{"a", "b"}, true, "/a/b/"},
		{"a/b", []string{"a", "b"}, false, "a/b"},
		{"/a//b", []string{"a", "b"}, true, "/a/b"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.input, func(t *testing.T) {
			t.Parallel()

			p := uri.ParsePath(c.input)
			if got := p.Segments(); !cmp.Equal(got, c.segs) {
				t.Errorf("uri.ParsePath(%q).Segments() = %v, want %v", c.input, got, c.segs)
			}
			if got := p.IsAbs(); got != c.abs {
				t.Errorf("uri.ParsePath(%q).IsAbs() = %v, want %v", c.input, got, c.abs)
			}
			if got := p.String(); got != c.str {
				t.Errorf("uri.ParsePath(%q).String() = %q, want %q", c.input, got, c.str)
			}
		})
	}
}

func TestPathJoin(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		base string
		seg  string
		want string
	}{
		{"root", "/", "seg", "/seg"},
		{"append", "/a", "b", "/a/b"},
		{"append to trailing", "/a/", "b", "/a/b"},
		{"relative base", "a", "b", "a/b"},
		{"multi segment", "/a", "b/c", "/a/b/c"},
		{"absolute segment replaces", "/a/b", "/x", "/x"},
		{"empty segment", "/a", "", "/a"},
		{"trailing kept from segment", "/a", "b/", "/a/b/"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			base := uri.ParsePath(c.base)
			if got := base.Join(c.seg).String(); got != c.want {
				t.Errorf("uri.ParsePath(%q).Join(%q) = %q, want %q", c.base, c.seg, got, c.want)
			}
			if got := base.String(); got != c.base {
				t.Errorf("receiver mutated by Join: %q, want %q", got, c.base)
			}
		})
	}
}

func TestPathDir(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input, want string
	}{
		{"/a/b", "/a/"},
		{"/a", "/"},
		{"/", "/"},
		{"a/b", "a/"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.input, func(t *testing.T) {
			t.Parallel()

			if got := uri.ParsePath(c.input).Dir().String(); got != c.want {
				t.Errorf("uri.ParsePath(%q).Dir() = %q, want %q", c.input, got, c.want)
			}
		})
	}
}

func TestPathEqual(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		p    uri.Path
		val  any
		want bool
	}{
		{"same", uri.ParsePath("/a/b"), uri.ParsePath("/a/b"), true},
		{"string value", uri.ParsePath("/a/b"), "/a/b", true},
		{"trailing slash differs", uri.ParsePath("/a/b"), "/a/b/", false},
		{"absolute differs", uri.ParsePath("/a/b"), "a/b", false},
		{"unsupported value", uri.ParsePath("/a/b"), 42, false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.p.Equal(c.val); got != c.want {
				t.Errorf("Path(%q).Equal(%v) = %v, want %v", c.p.String(), c.val, got, c.want)
			}
		})
	}
}

func TestMakePath(t *testing.T) {
	t.Parallel()

	p := uri.MakePath("a", "b")
	if got, want := p.String(), "/a/b"; got != want {
		t.Errorf("uri.MakePath(a, b).String() = %q, want %q", got, want)
	}
	if !p.IsAbs() {
		t.Error("uri.MakePath() IsAbs() = false, want true")
	}
}
