package vec_test

import (
	"fmt"

	"go.lepak.sg/safer/vec"
)

func ExampleVec_Drain() {
	v := vec.Of(1, 2, 3, 4, 5, 6, 7)

	d := v.Drain(vec.Range(1, 4))
	defer d.Close()
	for x, ok := d.Next(); ok; x, ok = d.Next() {
		fmt.Println("drained", x)
	}

	fmt.Println(v.Slice())
	// Output:
	// drained 2
	// drained 3
	// drained 4
	// [1 5 6 7]
}

type conn struct {
	name string
}

func (c *conn) Drop() {
	fmt.Println("closing", c.name)
}

func ExampleDrain_All() {
	v := vec.Of(&conn{"a"}, &conn{"b"}, &conn{"c"}, &conn{"d"})

	for c := range v.Drain(vec.RangeFrom(1)).All() {
		fmt.Println("took", c.name)
		break
	}

	fmt.Println(v.Len(), "left")
	// Output:
	// took b
	// closing c
	// closing d
	// 1 left
}

func ExampleParseBounds() {
	b, err := vec.ParseBounds("2..=3")
	if err != nil {
		panic(err)
	}

	v := vec.Of("a", "b", "c", "d", "e")
	for s := range v.Drain(b).Backward() {
		fmt.Println(s)
	}
	fmt.Println(v.Slice())
	// Output:
	// d
	// c
	// [a b e]
}
