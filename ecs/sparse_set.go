package ecs

const absent = -1

// SparseSet maps entity slots to components of one kind. Values are packed
// densely so iteration skips empty slots; removal swaps the last value into
// the hole, so order is not stable.
type SparseSet struct {
	slots  []entityID
	values []any
	index  []int
}

func (s *SparseSet) Has(id entityID) bool {
	if s == nil || id == 0 || int(id) > len(s.index) {
		return false
	}
	i := s.index[id-1]
	return i != absent && i < len(s.slots) && s.slots[i] == id
}

// Get returns the value stored for id, or nil.
func (s *SparseSet) Get(id entityID) any {
	if !s.Has(id) {
		return nil
	}
	return s.values[s.index[id-1]]
}

// Set stores v for id, replacing any previous value.
func (s *SparseSet) Set(id entityID, v any) {
	if s == nil || id == 0 {
		return
	}
	for int(id) > len(s.index) {
		s.index = append(s.index, absent)
	}
	if s.Has(id) {
		s.values[s.index[id-1]] = v
		return
	}
	s.index[id-1] = len(s.slots)
	s.slots = append(s.slots, id)
	s.values = append(s.values, v)
}

// Remove drops the value for id. It reports whether one was stored.
func (s *SparseSet) Remove(id entityID) bool {
	if !s.Has(id) {
		return false
	}
	i := s.index[id-1]
	last := len(s.slots) - 1
	moved := s.slots[last]

	s.slots[i] = moved
	s.values[i] = s.values[last]
	s.index[moved-1] = i

	s.slots = s.slots[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	s.index[id-1] = absent
	return true
}

// Slots returns the packed slot ids. The slice is owned by the set.
func (s *SparseSet) Slots() []entityID {
	if s == nil {
		return nil
	}
	return s.slots
}

func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.slots)
}
