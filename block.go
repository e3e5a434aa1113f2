package rawvec

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// ErrTooLarge is returned when a requested capacity cannot be represented:
// the count is negative or the total byte size overflows the address space.
var ErrTooLarge = errors.New("rawvec: requested capacity too large")

// block owns storage for a fixed number of element slots. It tracks only
// the allocation, never which slots hold live elements - lifecycle
// accounting belongs to the Vector layered on top. A block must not be
// duplicated: two blocks claiming the same slots would both destroy them.
type block[T any] struct {
	noCopy noCopy

	slots []T // len == capacity; nil when capacity is 0
}

// alloc acquires storage for n slots. n == 0 leaves the block absent and
// never touches the allocator. The block must be empty.
func (b *block[T]) alloc(n int) error {
	if b.slots != nil {
		panic("rawvec: alloc on a non-empty block")
	}
	if n == 0 {
		return nil
	}
	if size := sizeOf[T](); n < 0 || (size > 0 && n > math.MaxInt/size) {
		return errors.Wrapf(ErrTooLarge, "%d slots", n)
	}
	b.slots = make([]T, n)
	return nil
}

// release drops the storage without destroying anything. Callers must have
// destroyed any live elements first. No-op on an absent block.
func (b *block[T]) release() {
	b.slots = nil
}

// cap returns the number of slots the block can hold.
func (b *block[T]) cap() int {
	return len(b.slots)
}

// at returns a typed pointer to slot i.
func (b *block[T]) at(i int) *T {
	if i < 0 || i >= len(b.slots) {
		panic("rawvec: slot offset out of range")
	}
	return &b.slots[i]
}

// span returns the window over slots [from, to). to may equal the capacity,
// expressing an exclusive end-of-range bound.
func (b *block[T]) span(from, to int) []T {
	if from < 0 || from > to || to > len(b.slots) {
		panic("rawvec: slot range out of range")
	}
	return b.slots[from:to:to]
}

// swap exchanges the storage of two blocks in constant time without
// touching slot contents.
func (b *block[T]) swap(other *block[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// sizeOf returns the storage footprint of one slot.
func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// noCopy triggers the go vet copylocks check when a containing struct is
// copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
