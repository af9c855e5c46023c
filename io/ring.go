package io

const (
	// RING_DEFAULT_CAPACITY is the capacity in words of a ring with no
	// Capacity set.
	RING_DEFAULT_CAPACITY = 256
)

// Ring is a fixed capacity FIFO of words, with separate read and write
// positions that wrap at the capacity.
//
// A Ring connects the OUT of one computer to the IN of another. A full ring
// reports ErrOutputFull, and an empty ring reports ErrInputEmpty so that the
// receiving computer pauses until more values are sent.
type Ring struct {
	Capacity int // Capacity in words.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []int64
}

var _ Channel = (*Ring)(nil)

// NewRing creates a ring holding the initial values, if any. The capacity
// is raised to hold all of the initial values.
func NewRing(capacity int, values ...int64) (ring *Ring) {
	ring = &Ring{Capacity: max(capacity, len(values))}
	ring.Rewind()
	copy(ring.Data, values)
	ring.Size = len(values)
	ring.WriteIndex = len(values) % ring.Capacity

	return
}

// Rewind empties the ring.
func (ring *Ring) Rewind() {
	if ring.Capacity <= 0 {
		ring.Capacity = RING_DEFAULT_CAPACITY
	}

	ring.ReadIndex = 0
	ring.WriteIndex = 0
	ring.Size = 0
	ring.Data = make([]int64, ring.Capacity)
}

// Len returns the number of words waiting to be received.
func (ring *Ring) Len() int {
	return ring.Size
}

// Receive removes the oldest word from the ring.
func (ring *Ring) Receive() (value int64, err error) {
	if ring.Size == 0 {
		err = ErrInputEmpty
		return
	}

	value = ring.Data[ring.ReadIndex]
	ring.ReadIndex++
	if ring.ReadIndex == ring.Capacity {
		ring.ReadIndex = 0
	}
	ring.Size--

	return
}

// Send appends a word to the ring.
func (ring *Ring) Send(value int64) (err error) {
	if ring.Data == nil {
		ring.Rewind()
	}

	if ring.Size >= ring.Capacity {
		err = ErrOutputFull
		return
	}

	ring.Data[ring.WriteIndex] = value

	ring.WriteIndex++
	if ring.WriteIndex == ring.Capacity {
		ring.WriteIndex = 0
	}
	ring.Size++

	return
}
