package tags

import "strings"

// Set is an insertion-ordered collection of distinct tags.
// The zero value is an empty set ready to use.
type Set struct {
	order []Tag
	index map[Tag]int
}

// NewSet returns a set holding the valid tags of ts in order.
func NewSet(ts ...Tag) *Set {
	s := &Set{}
	for _, t := range ts {
		s.Add(t)
	}
	return s
}

// ParseSet builds a set from tag names, skipping malformed ones.
func ParseSet(names ...string) *Set {
	s := &Set{}
	for _, n := range names {
		s.Add(New(n))
	}
	return s
}

// Add inserts t and reports whether it was not present yet. None is ignored.
func (s *Set) Add(t Tag) bool {
	if !t.IsValid() {
		return false
	}
	if s.index == nil {
		s.index = make(map[Tag]int)
	}
	if _, ok := s.index[t]; ok {
		return false
	}
	s.index[t] = len(s.order)
	s.order = append(s.order, t)
	return true
}

// AddSet inserts every tag of other.
func (s *Set) AddSet(other *Set) {
	if other == nil {
		return
	}
	for _, t := range other.order {
		s.Add(t)
	}
}

// Remove deletes t, keeping the order of the remaining tags.
func (s *Set) Remove(t Tag) bool {
	i, ok := s.index[t]
	if !ok {
		return false
	}
	s.order = append(s.order[:i], s.order[i+1:]...)
	delete(s.index, t)
	for j := i; j < len(s.order); j++ {
		s.index[s.order[j]] = j
	}
	return true
}

// RemoveAll deletes every tag of other.
func (s *Set) RemoveAll(other *Set) {
	if other == nil {
		return
	}
	for _, t := range other.Tags() {
		s.Remove(t)
	}
}

// Has reports exact membership.
func (s *Set) Has(t Tag) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[t]
	return ok
}

// Len returns the number of tags.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// IsEmpty reports whether the set holds no tags.
func (s *Set) IsEmpty() bool {
	return s.Len() == 0
}

// Tags returns a copy of the tags in insertion order.
func (s *Set) Tags() []Tag {
	if s == nil {
		return nil
	}
	out := make([]Tag, len(s.order))
	copy(out, s.order)
	return out
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	c := &Set{}
	c.AddSet(s)
	return c
}

// Clear empties the set.
func (s *Set) Clear() {
	s.order = s.order[:0]
	clear(s.index)
}

func (s *Set) String() string {
	if s == nil {
		return "()"
	}
	names := make([]string, len(s.order))
	for i, t := range s.order {
		names[i] = t.Name()
	}
	return "(" + strings.Join(names, ",") + ")"
}
