package ratmath_test

import (
	"fmt"

	"github.com/zephyrtronium/ratmath"
)

func ExampleParse() {
	a, _ := ratmath.Parse("1..1/2 + 3:4")
	r, _ := a.Eval()
	fmt.Println(a)
	fmt.Println(r, r.MixedString())

	// Output:
	// ([1..1/2] + [3:4])
	// 9/2:11/2 4..1/2:5..1/2
}

func ExampleInterval_Pow() {
	x := ratmath.IntervalOf(-1, 1)
	p, _ := x.Pow(2)
	m, _ := x.RepeatedMul(2)
	fmt.Println(p, m)

	// Output:
	// 0:1 -1:1
}

func ExampleInterval_Union() {
	u, ok := ratmath.IntervalOf(1, 2).Union(ratmath.IntervalOf(3, 4))
	fmt.Println(u, ok)
	_, ok = ratmath.IntervalOf(1, 2).Union(ratmath.IntervalOf(10, 20))
	fmt.Println(ok)

	// Output:
	// 1:4 true
	// false
}

func ExampleRational_MixedString() {
	r, _ := ratmath.RationalOf(-1, 2)
	fmt.Println(r, r.MixedString())

	// Output:
	// -1/2 -0..1/2
}

func ExampleFractionInterval_PartitionWithMediants() {
	x := ratmath.NewFractionInterval(ratmath.FractionOf(0, 1), ratmath.FractionOf(1, 1))
	pieces, _ := x.PartitionWithMediants(2)
	for _, p := range pieces {
		fmt.Println(p)
	}

	// Output:
	// 0:1/3
	// 1/3:1/2
	// 1/2:2/3
	// 2/3:1
}
