// Command simdinfo prints the vector dispatch state of the current process.
//
// Usage:
//
//	simdinfo [flags]
//
// It reports which instruction-set families are compiled into the binary,
// which ones the running CPU confirms, the family dispatch selects, the raw
// capability probe, and the processor identity as seen by CPUID.
//
// Examples:
//
//	simdinfo
//	simdinfo -force scalar
//	simdinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/klauspost/cpuid/v2"

	"github.com/cwbudde/algo-simd"
	"github.com/cwbudde/algo-simd/cpu"
)

// listing order follows selection preference, not alphabet.
var allFamilies = []simd.Family{
	simd.FamilyAVX2,
	simd.FamilyNEON,
	simd.FamilySSE2,
	simd.FamilyScalar,
}

func main() {
	force := flag.String("force", "", "prefer this family (scalar, sse2, avx2, neon) before first use")
	list := flag.Bool("list", false, "list known family names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: simdinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the vector dispatch state of the current process.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  simdinfo\n")
		fmt.Fprintf(os.Stderr, "  simdinfo -force scalar\n")
		fmt.Fprintf(os.Stderr, "  simdinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	if *force != "" {
		if _, err := simd.ParseFamily(*force); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (using automatic selection)\n", err)
		} else if err := os.Setenv(simd.ForceEnv, *force); err != nil {
			fmt.Fprintf(os.Stderr, "warning: cannot set %s: %v\n", simd.ForceEnv, err)
		}
	}

	printStatus()
}

func printList() {
	names := make([]string, len(allFamilies))
	for i, f := range allFamilies {
		names[i] = f.String()
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func printStatus() {
	fmt.Printf("Active family: %s\n\n", simd.ActiveFamily())

	compiled := make(map[simd.Family]bool)
	for _, f := range simd.CompiledFamilies() {
		compiled[f] = true
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Family\tCompiled\tAvailable\n")
	fmt.Fprintf(tw, "------\t--------\t---------\n")
	for _, f := range allFamilies {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f, yesNo(compiled[f]), yesNo(simd.Available(f)))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		os.Exit(1)
	}

	features := cpu.DetectFeatures()
	fmt.Printf("\nProbe (%s): SSE2=%v AVX=%v AVX2=%v AVX-512=%v NEON=%v\n",
		features.Architecture,
		features.HasSSE2,
		features.HasAVX,
		features.HasAVX2,
		features.HasAVX512,
		features.HasNEON,
	)

	fmt.Printf("CPU: %s\n", cpuDescription())
}

// cpuDescription summarizes the processor identity reported by CPUID.
// Fields can be empty on platforms without CPUID-style identification.
func cpuDescription() string {
	vendor := cpuid.CPU.VendorString
	if vendor == "" {
		vendor = "unknown vendor"
	}
	brand := cpuid.CPU.BrandName
	if brand == "" {
		brand = "unknown model"
	}
	return fmt.Sprintf("%s, %s, %d cores / %d threads",
		vendor, brand, cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
