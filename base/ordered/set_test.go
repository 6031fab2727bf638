package ordered_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/fuser/base/ordered"
)

func newSet(elems ...string) *ordered.Set[string] {
	s := ordered.NewSet[string]()
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

func checkElems(t *testing.T, s *ordered.Set[string], want []string) {
	t.Helper()
	got := slices.Collect(s.All())
	if !cmp.Equal(got, want) {
		t.Errorf("got elements %v but want %v", got, want)
	}
	if s.Size() != len(want) {
		t.Errorf("set has %d elements but want %d", s.Size(), len(want))
	}
}

func TestSetAdd(t *testing.T) {
	s := newSet("a", "b", "c", "b")
	checkElems(t, s, []string{"a", "b", "c"})
	if s.Add("a") {
		t.Errorf("Add(a) = true but a is already in the set")
	}
	if !s.Has("a") {
		t.Errorf("Has(a) = false but a is in the set")
	}
	if s.Has("d") {
		t.Errorf("Has(d) = true but d is not in the set")
	}
}

func TestSetRemove(t *testing.T) {
	s := newSet("a", "b", "c")
	if !s.Remove("b") {
		t.Errorf("Remove(b) = false but b is in the set")
	}
	checkElems(t, s, []string{"a", "c"})
	if s.Remove("b") {
		t.Errorf("Remove(b) = true but b has been removed")
	}
	s.Add("b")
	checkElems(t, s, []string{"a", "c", "b"})
}

func TestSetReplace(t *testing.T) {
	tests := []struct {
		elems     []string
		old, with string
		ok        bool
		want      []string
	}{
		{
			elems: []string{"a", "b", "c"},
			old:   "b", with: "d",
			ok:   true,
			want: []string{"a", "d", "c"},
		},
		{
			elems: []string{"a", "b", "c"},
			old:   "b", with: "b",
			ok:   true,
			want: []string{"a", "b", "c"},
		},
		{
			// The replacement moves from the tail to the position of old.
			elems: []string{"a", "b", "c"},
			old:   "a", with: "c",
			ok:   true,
			want: []string{"c", "b"},
		},
		{
			elems: []string{"a", "b"},
			old:   "z", with: "c",
			ok:   false,
			want: []string{"a", "b"},
		},
	}
	for ti, test := range tests {
		s := newSet(test.elems...)
		if ok := s.Replace(test.old, test.with); ok != test.ok {
			t.Errorf("test %d: Replace(%s, %s) = %v but want %v", ti, test.old, test.with, ok, test.ok)
		}
		checkElems(t, s, test.want)
	}
}
