package simd_test

import (
	"fmt"

	"github.com/cwbudde/algo-simd"
)

func ExampleAddFloat4() {
	a := [4]float32{1, 2, 3, 4}
	b := [4]float32{5, 6, 7, 8}
	var dst [4]float32

	simd.AddFloat4(&dst, &a, &b)
	fmt.Println(dst)
	// Output: [6 8 10 12]
}

func ExampleShuffleInt4() {
	v := [4]int32{10, 20, 30, 40}
	var dst [4]int32

	// Each output lane picks a source lane via two mask bits.
	simd.ShuffleInt4(&dst, &v, 0b00011011)
	fmt.Println(dst)
	// Output: [40 30 20 10]
}

func ExampleOperations() {
	ops := simd.Operations()

	a := [4]float32{1, 2, 3, 4}
	b := [4]float32{5, 6, 7, 8}
	var dst [4]float32

	ops.MulFloat4(&dst, &a, &b)
	fmt.Println(dst)
	// Output: [5 12 21 32]
}

func ExampleActiveFamily() {
	family := simd.ActiveFamily()

	// The concrete family depends on the hardware, but selection always
	// resolves to a real one.
	fmt.Println(family != simd.FamilyNone)
	// Output: true
}

func ExampleAvailable() {
	fmt.Println(simd.Available(simd.FamilyScalar))
	// Output: true
}

func ExampleParseFamily() {
	family, _ := simd.ParseFamily("neon")
	fmt.Println(family)

	_, err := simd.ParseFamily("mmx")
	fmt.Println(err)
	// Output:
	// neon
	// simd: unknown family "mmx"
}
