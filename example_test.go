package rawvec

import (
	"fmt"
	"strings"
)

// Example demonstrates basic vector usage with a plain value type.
func Example() {
	v := New[int](Ops[int]{})
	defer v.Release()

	for i := 0; i < 4; i++ {
		if err := v.PushBack(i * 10); err != nil {
			panic(err)
		}
	}
	if err := v.Insert(1, 99); err != nil {
		panic(err)
	}
	if err := v.Erase(3); err != nil {
		panic(err)
	}

	fmt.Println(v.View())
	fmt.Printf("len=%d cap=%d\n", v.Len(), v.Cap())

	// Output:
	// [0 99 10 30]
	// len=4 cap=8
}

// ExampleOps shows a resource-owning element type describing its lifecycle.
func ExampleOps() {
	type buffer struct {
		data *strings.Builder
	}

	closed := 0
	ops := Ops[buffer]{
		Init: func(b *buffer) error {
			b.data = &strings.Builder{}
			return nil
		},
		Copy: func(dst, src *buffer) error {
			dst.data = &strings.Builder{}
			_, err := dst.data.WriteString(src.data.String())
			return err
		},
		Destroy: func(b *buffer) {
			closed++
		},
	}

	v, err := NewLen[buffer](ops, 2)
	if err != nil {
		panic(err)
	}
	v.At(0).data.WriteString("hello")

	c, err := v.Clone()
	if err != nil {
		panic(err)
	}
	c.At(0).data.WriteString(" world") // deep copy: the original is unaffected

	fmt.Println(v.At(0).data.String())
	fmt.Println(c.At(0).data.String())

	v.Release()
	c.Release()
	fmt.Println("destroyed:", closed)

	// Output:
	// hello
	// hello world
	// destroyed: 4
}

// ExampleVector_Emplace inserts a copy of an element the vector already
// holds; the emplace ordering makes reading the aliased source safe even
// though its slot is relocated during the operation.
func ExampleVector_Emplace() {
	v := New[string](Ops[string]{})
	defer v.Release()

	for _, s := range []string{"a", "b", "c"} {
		if err := v.PushBack(s); err != nil {
			panic(err)
		}
	}

	first := v.At(0)
	if err := v.Emplace(1, func(dst *string) error {
		*dst = *first
		return nil
	}); err != nil {
		panic(err)
	}

	fmt.Println(v.View())

	// Output:
	// [a a b c]
}
