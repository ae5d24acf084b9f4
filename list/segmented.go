package list

const (
	// DefaultSegmentBits determines the size of each segment.
	// 16 bits = 65536 items per segment.
	DefaultSegmentBits = 16

	maxSegmentBits = 30
)

// Segmented is a List made of fixed-size segments.
// Growth allocates a new segment and never moves existing items, so pointers
// returned through RefItem stay valid across Push.
type Segmented[E any] struct {
	segments [][]E
	bits     uint
	mask     int
	length   int
}

// NewSegmented creates a Segmented list with DefaultSegmentBits.
func NewSegmented[E any](capacity int) *Segmented[E] {
	return NewSegmentedBits[E](DefaultSegmentBits, capacity)
}

// NewSegmentedBits creates a Segmented list with 1<<bits items per segment.
// Out-of-range bits fall back to DefaultSegmentBits.
func NewSegmentedBits[E any](bits int, capacity int) *Segmented[E] {
	if bits <= 0 || bits > maxSegmentBits {
		bits = DefaultSegmentBits
	}
	s := &Segmented[E]{
		bits: uint(bits),
		mask: 1<<bits - 1,
	}
	if capacity > 0 {
		s.segments = make([][]E, 0, (capacity>>bits)+1)
	}
	return s
}

// Len returns the number of items.
func (s *Segmented[E]) Len() int { return s.length }

// Push appends item, allocating a new segment when the last one is full.
func (s *Segmented[E]) Push(item E) {
	segIdx := s.length >> s.bits
	if segIdx == len(s.segments) {
		s.segments = append(s.segments, make([]E, 1<<s.bits))
	}
	s.segments[segIdx][s.length&s.mask] = item
	s.length++
}

// Get returns the item at index.
func (s *Segmented[E]) Get(index int) (E, bool) {
	p := s.slot(index)
	if p == nil {
		var zero E
		return zero, false
	}
	return *p, true
}

// GetMut returns a handle that writes into the owning segment.
func (s *Segmented[E]) GetMut(index int) (ItemMut[E], bool) {
	p := s.slot(index)
	if p == nil {
		return nil, false
	}
	return PtrItem[E]{p: p}, true
}

// Clear drops all segments.
func (s *Segmented[E]) Clear() {
	clear(s.segments)
	s.segments = s.segments[:0]
	s.length = 0
}

// Segments returns the number of allocated segments.
func (s *Segmented[E]) Segments() int { return len(s.segments) }

func (s *Segmented[E]) slot(index int) *E {
	if index < 0 || index >= s.length {
		return nil
	}
	return &s.segments[index>>s.bits][index&s.mask]
}

// SegmentedStorage produces *Segmented lists.
type SegmentedStorage[E any] struct {
	// Bits is the per-segment size exponent; zero selects DefaultSegmentBits.
	Bits int
}

// NewList implements Storage.
func (st SegmentedStorage[E]) NewList(capacity int) List[E] {
	return NewSegmentedBits[E](st.Bits, capacity)
}
