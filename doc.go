// Package rawvec implements a growable contiguous container built on
// explicitly managed slot storage.
//
// # Overview
//
// rawvec separates two concerns that Go slices fuse together: owning a
// block of element slots, and tracking which of those slots hold live
// elements. The split is what makes the container's guarantees possible
// for element types whose construction, copy, or assignment can fail:
//
//   - Growth relocates elements by move when the type declares a no-fail
//     move, and falls back to copy otherwise, so a failed relocation never
//     leaves elements half-moved.
//   - Every bulk operation accounts for exactly which elements it has
//     constructed, and destroys precisely those on failure - no leaks, no
//     double-destroys.
//   - Reallocating operations, clone, and reserve give the strong
//     guarantee: they either complete or leave the container untouched.
//
// # Basic Usage
//
//	v := rawvec.New[int](rawvec.Ops[int]{})
//	defer v.Release()
//
//	for i := 0; i < 4; i++ {
//		v.PushBack(i * 10)
//	}
//	v.Insert(1, 99)   // [0 99 10 20 30]
//	v.Erase(3)        // [0 99 10 30]
//	fmt.Println(*v.At(1))
//
// # Element Lifecycle
//
// Plain value types work with a zero Ops. Types that manage resources or
// whose operations can fail describe themselves once, at construction:
//
//	ops := rawvec.Ops[Conn]{
//		Copy:    cloneConn, // can fail
//		Destroy: closeConn,
//	}
//	v := rawvec.New[Conn](ops)
//
// Supplying Move declares that relocation by move cannot fail; without it,
// a type with a Copy op is relocated by copy so that a mid-relocation
// failure leaves the old elements intact.
//
// # Thread Safety
//
// A Vector assumes exclusive access for the duration of any mutating call.
// Concurrent readers are safe only while no writer is active.
//
// # Important Notes
//
//   - Pointers and windows obtained from At, View, or All are invalidated
//     by any operation that can reallocate.
//   - Insert takes ownership of its argument. To insert a deep copy of an
//     element already in the container, use Emplace with the type's Copy
//     op; the emplace ordering makes the self-referential case safe.
//   - Out-of-range indices are caller bugs and panic; they are not part of
//     the error surface.
package rawvec
