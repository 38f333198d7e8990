package qptrie

import "github.com/hideo55/go-popcount"

// sparse is a dense slice paired with a 32-bit occupancy bitmap, addressed
// by slot in [0,16]. The physical offset of an occupied slot is the
// popcount of the bits below it, so entries stay in ascending slot order
// without ever touching absent slots.
type sparse[T any] struct {
	bitmap  uint32
	entries []T
}

func popcount32(x uint32) int {
	return int(popcount.Count(uint64(x)))
}

func (s *sparse[T]) len() int { return len(s.entries) }

func (s *sparse[T]) contains(slot uint8) bool {
	return s.bitmap&(uint32(1)<<slot) != 0
}

func (s *sparse[T]) offset(slot uint8) int {
	return popcount32(s.bitmap & (uint32(1)<<slot - 1))
}

func (s *sparse[T]) get(slot uint8) (T, bool) {
	if !s.contains(slot) {
		var zero T
		return zero, false
	}

	return s.entries[s.offset(slot)], true
}

// getPtr returns a pointer into the backing slice, or nil if slot is
// absent. The pointer is only valid until the next insert or remove on
// this sparse array.
func (s *sparse[T]) getPtr(slot uint8) *T {
	if !s.contains(slot) {
		return nil
	}

	return &s.entries[s.offset(slot)]
}

// getOrAny returns the entry at slot if present, otherwise an arbitrary
// occupied entry. Precondition: the array is non-empty.
func (s *sparse[T]) getOrAny(slot uint8) *T {
	if s.contains(slot) {
		return &s.entries[s.offset(slot)]
	}

	return &s.entries[0]
}

// insert adds v at slot. Precondition: slot is not already present.
func (s *sparse[T]) insert(slot uint8, v T) *T {
	i := s.offset(slot)
	s.bitmap |= uint32(1) << slot

	var zero T
	s.entries = append(s.entries, zero)
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = v

	return &s.entries[i]
}

// remove deletes slot and returns its prior value. Precondition: slot is
// present.
func (s *sparse[T]) remove(slot uint8) T {
	i := s.offset(slot)
	v := s.entries[i]

	s.bitmap &^= uint32(1) << slot
	s.entries = append(s.entries[:i], s.entries[i+1:]...)

	return v
}

// clearLast pops the sole remaining entry. Precondition: len() == 1.
func (s *sparse[T]) clearLast() T {
	v := s.entries[0]
	s.bitmap = 0
	s.entries = nil

	return v
}
