// Package ordered provides insertion-ordered data structures.
package ordered

import "iter"

// Set is an ordered set. All iterates over the elements
// in the same order in which they have been added.
type Set[T comparable] struct {
	elems []T
	index map[T]int
}

// NewSet returns a new ordered set.
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{index: make(map[T]int)}
}

// Add an element at the end of the set.
// Returns false if the element is already in the set.
func (s *Set[T]) Add(v T) bool {
	if _, in := s.index[v]; in {
		return false
	}
	s.index[v] = len(s.elems)
	s.elems = append(s.elems, v)
	return true
}

// Has returns true if the element is in the set.
func (s *Set[T]) Has(v T) bool {
	_, in := s.index[v]
	return in
}

// Remove an element from the set.
// Returns false if the element is not in the set.
func (s *Set[T]) Remove(v T) bool {
	i, in := s.index[v]
	if !in {
		return false
	}
	s.removeAt(i)
	return true
}

func (s *Set[T]) removeAt(i int) {
	v := s.elems[i]
	s.elems = append(s.elems[:i], s.elems[i+1:]...)
	delete(s.index, v)
	for j := i; j < len(s.elems); j++ {
		s.index[s.elems[j]] = j
	}
}

// Replace substitutes an element with another at the same position.
// If the replacement is already in the set, it is first removed from
// its current position. Returns false if old is not in the set.
func (s *Set[T]) Replace(old, with T) bool {
	i, in := s.index[old]
	if !in {
		return false
	}
	if old == with {
		return true
	}
	if j, in := s.index[with]; in {
		s.removeAt(j)
		i = s.index[old]
	}
	s.elems[i] = with
	delete(s.index, old)
	s.index[with] = i
	return true
}

// All returns an iterator to range over the elements of the set.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.elems {
			if !yield(v) {
				break
			}
		}
	}
}

// Size returns the number of elements in the set.
func (s *Set[T]) Size() int {
	return len(s.elems)
}
