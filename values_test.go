package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/uriwerk/uri"
)

func TestValuesOrder(t *testing.T) {
	t.Parallel()

	vals := uri.NewValues().
		Append("b", "1").
		Append("a", "2").
		Append("b", "3")

	if got, want := vals.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got := vals.Keys(); !cmp.Equal(got, []string{"b", "a"}) {
		t.Errorf("Keys() = %v, want [b a]", got)
	}
	if got := vals.Get("b"); !cmp.Equal(got, []string{"1", "3"}) {
		t.Errorf("Get(b) = %v, want [1 3]", got)
	}
	if v, ok := vals.First("b"); !ok || v != "1" {
		t.Errorf("First(b) = (%q, %v), want (1, true)", v, ok)
	}
	if v, ok := vals.Last("b"); !ok || v != "3" {
		t.Errorf("Last(b) = (%q, %v), want (3, true)", v, ok)
	}

	// Set replaces values but keeps the key position.
	vals.Set("b", "9")
	if got := vals.Keys(); !cmp.Equal(got, []string{"b", "a"}) {
		t.Errorf("Keys() after Set = %v, want [b a]", got)
	}
	if got, want := vals.String(), "b=9&a=2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	vals.Del("b")
	if got := vals.Keys(); !cmp.Equal(got, []string{"a"}) {
		t.Errorf("Keys() after Del = %v, want [a]", got)
	}
}

func TestValuesCaseSensitive(t *testing.T) {
	t.Parallel()

	vals := uri.NewValues().Set("Key", "1")
	if vals.Has("key") {
		t.Error(`Has("key") = true, want false: query keys are case-sensitive`)
	}
	if !vals.Has("Key") {
		t.Error(`Has("Key") = false, want true`)
	}
}

func TestValuesEqual(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v1   *uri.Values
		val  any
		want bool
	}{
		{
			"key order ignored",
			uri.NewValues().Set("a", "1").Set("b", "2"),
			uri.NewValues().Set("b", "2").Set("a", "1"),
			true,
		},
		{
			"value order matters",
			uri.NewValues().Append("a", "1").Append("a", "2"),
			uri.NewValues().Append("a", "2").Append("a", "1"),
			false,
		},
		{
			"different value",
			uri.NewValues().Set("a", "1"),
			uri.NewValues().Set("a", "2"),
			false,
		},
		{
			"missing key",
			uri.NewValues().Set("a", "1"),
			uri.NewValues().Set("b", "1"),
			false,
		},
		{"unsupported value", uri.NewValues().Set("a", "1"), "a=1", false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.v1.Equal(c.val); got != c.want {
				t.Errorf("Values(%q).Equal(%v) = %v, want %v", c.v1.String(), c.val, got, c.want)
			}
		})
	}
}

func TestValuesClone(t *testing.T) {
	t.Parallel()

	vals := uri.NewValues().Append("a", "1")
	vals2 := vals.Clone()
	vals2.Append("a", "2").Set("b", "3")

	if got := vals.Get("a"); !cmp.Equal(got, []string{"1"}) {
		t.Errorf("original Get(a) = %v after clone mutation, want [1]", got)
	}
	if vals.Has("b") {
		t.Error("original gained key b after clone mutation")
	}
}

func TestParseValues(t *testing.T) {
	t.Parallel()

	vals, err := uri.ParseValues("a=1&b=x+y&a=%32")
	if err != nil {
		t.Fatalf("uri.ParseValues() error = %v, want nil", err)
	}
	if got := vals.Get("a"); !cmp.Equal(got, []string{"1", "2"}) {
		t.Errorf("Get(a) = %v, want [1 2]", got)
	}
	if v, _ := vals.First("b"); v != "x y" {
		t.Errorf("First(b) = %q, want %q", v, "x y")
	}

	if _, err := uri.ParseValues("no-separator"); err == nil {
		t.Error("uri.ParseValues(no-separator) error = nil, want ErrInvalidValue")
	}
}

func TestValuesString(t *testing.T) {
	t.Parallel()

	vals := uri.NewValues().
		Append("k ey", "v&1").
		Append("b", "")
	if got, want := vals.String(), "k+ey=v%261&b="; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got := uri.NewValues().String(); got != "" {
		t.Errorf("empty Values String() = %q, want empty", got)
	}
}
