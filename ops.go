package rawvec

import "github.com/pkg/errors"

// Ops describes the lifecycle of an element type. The zero value gives
// plain value semantics: zero-value construction, shallow copy and assign,
// no destructor - sufficient for ints, strings, small structs.
//
// Each func may be nil, in which case the documented default applies.
// The set supplied here is a static, per-type policy: the Vector consults
// which funcs exist, never how they behave at runtime.
type Ops[T any] struct {
	// Init value-constructs into a raw slot. Default: leave the zero value.
	Init func(*T) error

	// Copy copy-constructs into a raw slot from a live source.
	// Default: shallow assignment, which cannot fail.
	Copy func(dst, src *T) error

	// Move move-constructs into a raw slot, leaving *src in a state its
	// Destroy accepts. Supplying Move declares that relocation by move
	// cannot fail; types whose move could fail must leave it nil and rely
	// on Copy. Default: shallow assignment plus zeroing of the source.
	Move func(dst, src *T)

	// Assign overwrites a live destination from a live source. Default:
	// shallow assignment for plain types; when Copy or Destroy is set, the
	// source is copied into a temporary first, and only on success is the
	// destination destroyed and the temporary moved in - a copy failure
	// leaves the destination live and untouched.
	Assign func(dst, src *T) error

	// Destroy ends the lifetime of a live element. The container zeroes
	// the slot afterwards regardless. Default: nothing.
	Destroy func(*T)
}

// moveSafe reports whether relocation uses move construction: either the
// type declared a no-fail move, or it is not copyable and move is the only
// option (the nil-nil case degenerates to a trivial, no-fail relocation).
func (ops *Ops[T]) moveSafe() bool {
	return ops.Move != nil || ops.Copy == nil
}

func (ops *Ops[T]) init(dst *T) error {
	if ops.Init == nil {
		return nil
	}
	return ops.Init(dst)
}

func (ops *Ops[T]) copy(dst, src *T) error {
	if ops.Copy == nil {
		*dst = *src
		return nil
	}
	return ops.Copy(dst, src)
}

func (ops *Ops[T]) move(dst, src *T) {
	if ops.Move == nil {
		var zero T
		*dst = *src
		*src = zero
		return
	}
	ops.Move(dst, src)
}

func (ops *Ops[T]) assign(dst, src *T) error {
	if ops.Assign != nil {
		return ops.Assign(dst, src)
	}
	if ops.Copy == nil && ops.Destroy == nil {
		*dst = *src
		return nil
	}
	// Copy before destroying anything: if the copy fails, dst must remain
	// live exactly once, never destroyed-but-tracked.
	var tmp T
	if err := ops.copy(&tmp, src); err != nil {
		return err
	}
	ops.destroy(dst)
	ops.move(dst, &tmp)
	if ops.Move != nil {
		// A user move can leave residue its Destroy reclaims; the trivial
		// move leaves a zeroed husk with nothing to reclaim.
		ops.destroy(&tmp)
	}
	return nil
}

// destroy ends the lifetime of *p and zeroes the slot, dropping any
// references so the collector can reclaim pointees. Zeroing also keeps a
// later re-population of the slot freshly value-initialized.
func (ops *Ops[T]) destroy(p *T) {
	if ops.Destroy != nil {
		ops.Destroy(p)
	}
	var zero T
	*p = zero
}

// initN value-constructs every slot of dst. If construction fails partway,
// the elements already built in this run are destroyed before the error
// propagates.
func (ops *Ops[T]) initN(dst []T) error {
	for i := range dst {
		if err := ops.init(&dst[i]); err != nil {
			ops.destroyN(dst[:i])
			return errors.Wrapf(err, "construct element %d", i)
		}
	}
	return nil
}

// copyN copy-constructs src into the raw slots of dst, rolling back the
// partially built run on failure. The sources are never touched.
func (ops *Ops[T]) copyN(dst, src []T) error {
	for i := range src {
		if err := ops.copy(&dst[i], &src[i]); err != nil {
			ops.destroyN(dst[:i])
			return errors.Wrapf(err, "copy element %d", i)
		}
	}
	return nil
}

// relocate constructs the elements of src into the raw slots of dst, by
// move or by copy per the type's policy. Sources remain live either way;
// the caller destroys them once the whole operation has committed. On a
// copy-path failure the partially built dst run is destroyed and the
// sources are left fully intact.
func (ops *Ops[T]) relocate(dst, src []T) error {
	if ops.moveSafe() {
		for i := range src {
			ops.move(&dst[i], &src[i])
		}
		return nil
	}
	return ops.copyN(dst, src)
}

// destroyN destroys a run of live elements in index order.
func (ops *Ops[T]) destroyN(s []T) {
	for i := range s {
		ops.destroy(&s[i])
	}
}
