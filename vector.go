package rawvec

import (
	"iter"

	"github.com/pkg/errors"
)

// Vector is a growable contiguous container. Slots [0, Len) hold live
// elements; slots [Len, Cap) are allocated but vacant. Not goroutine-safe:
// a mutating call assumes exclusive access to the instance.
//
// Operations that reallocate (Reserve, Clone, the growing paths of Resize,
// CopyFrom, and the positional inserts) give the strong guarantee: on
// failure the container is exactly as it was. The in-place insert and
// erase paths give a weaker guarantee for types whose Assign can fail -
// the container stays structurally valid, every tracked slot holding
// exactly one live element, but values in the shifted range are
// unspecified.
type Vector[T any] struct {
	ops  Ops[T]
	data block[T]
	size int
}

// New returns an empty vector for the given element lifecycle. No storage
// is allocated.
func New[T any](ops Ops[T]) *Vector[T] {
	return &Vector[T]{ops: ops}
}

// NewLen returns a vector of n value-constructed elements with capacity
// exactly n. If constructing any element fails, everything built so far is
// destroyed, the storage is released, and the error is returned.
func NewLen[T any](ops Ops[T], n int) (*Vector[T], error) {
	v := New[T](ops)
	if n == 0 {
		return v, nil
	}
	if err := v.data.alloc(n); err != nil {
		return nil, err
	}
	if err := v.ops.initN(v.data.span(0, n)); err != nil {
		v.data.release()
		return nil, err
	}
	v.size = n
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots the vector owns.
func (v *Vector[T]) Cap() int {
	return v.data.cap()
}

// At returns a pointer to the element at index i. The pointer is
// invalidated by any operation that can reallocate. Panics if i is out of
// range.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic("rawvec: index out of range")
	}
	return v.data.at(i)
}

// View returns the live elements as a slice window over the vector's own
// storage. Mutations through the window are visible to the vector; the
// window is invalidated by any operation that can reallocate.
func (v *Vector[T]) View() []T {
	return v.data.span(0, v.size)
}

// All iterates the live elements in index order.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.at(i)) {
				return
			}
		}
	}
}

// Clone returns a deep copy with capacity exactly Len. Strong guarantee:
// if copying any element fails, the partial copy is torn down and the
// receiver is untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := New[T](v.ops)
	if v.size == 0 {
		return c, nil
	}
	if err := c.data.alloc(v.size); err != nil {
		return nil, err
	}
	if err := v.ops.copyN(c.data.span(0, v.size), v.View()); err != nil {
		c.data.release()
		return nil, err
	}
	c.size = v.size
	return c, nil
}

// CopyFrom makes the receiver a deep copy of src. When the receiver's
// capacity cannot hold src, a full copy is built and swapped in, giving
// the strong guarantee. When capacity suffices, elements are reused in
// place: the overlapping prefix is assigned over, trailing elements are
// copy-constructed or destroyed as needed; a failure on that path leaves
// the receiver valid with its original length. The reallocating path leaves
// the receiver with src's lifecycle ops (the copies were constructed by
// them); the in-place path keeps the receiver's own, which constructed the
// reused elements. Self-copy is a no-op.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if v.Cap() < src.size {
		c, err := src.Clone()
		if err != nil {
			return err
		}
		v.Swap(c)
		c.Release()
		return nil
	}
	overlap := min(v.size, src.size)
	for i := 0; i < overlap; i++ {
		if err := v.ops.assign(v.data.at(i), src.data.at(i)); err != nil {
			return errors.Wrapf(err, "assign element %d", i)
		}
	}
	if v.size < src.size {
		if err := v.ops.copyN(v.data.span(v.size, src.size), src.data.span(v.size, src.size)); err != nil {
			return err
		}
	} else {
		v.ops.destroyN(v.data.span(src.size, v.size))
	}
	v.size = src.size
	return nil
}

// Take moves src's contents into the receiver in constant time, destroying
// whatever the receiver held. The receiver adopts src's lifecycle ops along
// with its elements; src keeps its ops and is left in the default empty
// state. Never allocates, never fails. Self-take is a no-op.
func (v *Vector[T]) Take(src *Vector[T]) {
	if v == src {
		return
	}
	v.ops.destroyN(v.View())
	v.size = 0
	v.data.release()
	v.ops = src.ops
	v.data.swap(&src.data)
	v.size, src.size = src.size, 0
}

// Swap exchanges the contents of two vectors in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.swap(&other.data)
	v.size, other.size = other.size, v.size
	v.ops, other.ops = other.ops, v.ops
}

// Release destroys all live elements and releases the storage, returning
// the vector to its default empty state. Idempotent; the vector remains
// usable afterwards.
func (v *Vector[T]) Release() {
	v.ops.destroyN(v.View())
	v.size = 0
	v.data.release()
}

// Reserve grows the storage to hold at least n elements, relocating the
// live elements into it. No-op when n <= Cap. Strong guarantee: on
// failure the vector is untouched.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	var fresh block[T]
	if err := fresh.alloc(n); err != nil {
		return err
	}
	if err := v.ops.relocate(fresh.span(0, v.size), v.View()); err != nil {
		fresh.release()
		return err
	}
	v.commit(&fresh)
	return nil
}

// Resize sets the length to n. Shrinking destroys the trailing elements;
// growing reserves capacity for exactly n and value-constructs the new
// tail. Slots vacated by a shrink and re-populated by a later grow come
// back freshly value-initialized, never with stale contents.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("rawvec: negative length")
	}
	switch {
	case n == v.size:
		return nil
	case n < v.size:
		v.ops.destroyN(v.data.span(n, v.size))
	default:
		if err := v.Reserve(n); err != nil {
			return err
		}
		if err := v.ops.initN(v.data.span(v.size, n)); err != nil {
			return err
		}
	}
	v.size = n
	return nil
}

// PushBack appends x, taking ownership of it. Amortized constant time.
func (v *Vector[T]) PushBack(x T) error {
	return v.Insert(v.size, x)
}

// EmplaceBack constructs a new last element directly in its slot.
func (v *Vector[T]) EmplaceBack(build func(*T) error) error {
	return v.Emplace(v.size, build)
}

// Insert places x at index i, shifting elements at or after i one slot
// toward the end. The container takes ownership of x. i may equal Len,
// meaning append.
func (v *Vector[T]) Insert(i int, x T) error {
	return v.Emplace(i, func(dst *T) error {
		*dst = x
		return nil
	})
}

// Emplace constructs a new element at index i via build, which receives a
// raw slot to construct into, and shifts elements at or after i one slot
// toward the end. i may equal Len, meaning append.
//
// build may read the vector's existing elements: when no reallocation is
// needed the new value is materialized into a temporary before anything
// shifts, so a source that aliases the shifted range is read intact; on
// the reallocation path build constructs straight into the fresh storage.
// The reallocation path gives the strong guarantee.
func (v *Vector[T]) Emplace(i int, build func(*T) error) error {
	if i < 0 || i > v.size {
		panic("rawvec: insert position out of range")
	}
	if v.Cap() >= v.size+1 {
		return v.emplaceInPlace(i, build)
	}
	return v.emplaceGrow(i, build)
}

func (v *Vector[T]) emplaceInPlace(i int, build func(*T) error) error {
	if i == v.size {
		slot := v.data.at(v.size)
		if err := build(slot); err != nil {
			var zero T
			*slot = zero
			return errors.Wrap(err, "construct element")
		}
		v.size++
		return nil
	}

	// Materialize first: build's arguments may alias the range about to
	// shift.
	var tmp T
	if err := build(&tmp); err != nil {
		return errors.Wrap(err, "construct element")
	}
	if err := v.ops.relocate(v.data.span(v.size, v.size+1), v.data.span(v.size-1, v.size)); err != nil {
		v.ops.destroy(&tmp)
		return err
	}
	// The last slot is now occupied; account for it before anything else
	// can fail, so an Assign error leaves every live element tracked.
	v.size++
	for j := v.size - 2; j > i; j-- {
		if err := v.ops.assign(v.data.at(j), v.data.at(j-1)); err != nil {
			v.ops.destroy(&tmp)
			return errors.Wrapf(err, "shift element %d", j-1)
		}
	}
	if err := v.ops.assign(v.data.at(i), &tmp); err != nil {
		v.ops.destroy(&tmp)
		return errors.Wrapf(err, "place element %d", i)
	}
	v.ops.destroy(&tmp)
	return nil
}

func (v *Vector[T]) emplaceGrow(i int, build func(*T) error) error {
	var fresh block[T]
	if err := fresh.alloc(v.grownCap()); err != nil {
		return err
	}
	// New element first, straight into its final slot: its source may
	// alias the old storage, which stays untouched until everything is in
	// place.
	slot := fresh.at(i)
	if err := build(slot); err != nil {
		fresh.release()
		return errors.Wrap(err, "construct element")
	}
	if err := v.ops.relocate(fresh.span(0, i), v.data.span(0, i)); err != nil {
		v.ops.destroy(slot)
		fresh.release()
		return err
	}
	if err := v.ops.relocate(fresh.span(i+1, v.size+1), v.data.span(i, v.size)); err != nil {
		v.ops.destroyN(fresh.span(0, i+1))
		fresh.release()
		return err
	}
	v.commit(&fresh)
	v.size++
	return nil
}

// Erase removes the element at index i, shifting later elements one slot
// toward the beginning by assignment and destroying the vacated last
// slot. The element that followed i now lives at i.
func (v *Vector[T]) Erase(i int) error {
	if i < 0 || i >= v.size {
		panic("rawvec: index out of range")
	}
	for j := i; j < v.size-1; j++ {
		if err := v.ops.assign(v.data.at(j), v.data.at(j+1)); err != nil {
			return errors.Wrapf(err, "shift element %d", j+1)
		}
	}
	v.size--
	v.ops.destroy(v.data.at(v.size))
	return nil
}

// PopBack destroys the last element. No-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.ops.destroy(v.data.at(v.size))
}

// grownCap is the doubling growth policy with a floor of one slot.
func (v *Vector[T]) grownCap() int {
	if c := v.Cap(); c > 0 {
		return 2 * c
	}
	return 1
}

// commit destroys the old live elements and installs fresh as the new
// storage. fresh already holds the relocated (and any new) elements.
func (v *Vector[T]) commit(fresh *block[T]) {
	v.ops.destroyN(v.View())
	v.data.swap(fresh)
	fresh.release()
}
