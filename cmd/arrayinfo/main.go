// Command arrayinfo prints growth behavior of the growable array container.
//
// Usage:
//
//	arrayinfo [flags] [element-count ...]
//
// For each count it appends that many elements to a fresh array and
// reports the resulting size and capacity, the number of growth steps,
// and how many elements were copied while growing. Without arguments it
// reports a default set of counts.
//
// Examples:
//
//	arrayinfo 10
//	arrayinfo 4 100 1000000
//	arrayinfo -trace 5
//	arrayinfo -demo
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/daolivar01/dsa/container/array"
)

var defaultCounts = []int{1, 2, 3, 4, 10, 100, 1000, 1000000}

func main() {
	trace := flag.Bool("trace", false, "print the array rendering after every append")
	demo := flag.Bool("demo", false, "walk an insert/delete scenario with renderings")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: arrayinfo [flags] [element-count ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints growth behavior of the growable array container.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, reports a default set of counts.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  arrayinfo 10\n")
		fmt.Fprintf(os.Stderr, "  arrayinfo 4 100 1000000\n")
		fmt.Fprintf(os.Stderr, "  arrayinfo -trace 5\n")
		fmt.Fprintf(os.Stderr, "  arrayinfo -demo\n")
	}
	flag.Parse()

	if *demo {
		runDemo()
		return
	}

	counts := resolveCounts(flag.Args())
	if len(counts) == 0 {
		fmt.Fprintf(os.Stderr, "error: no valid element counts\n")
		os.Exit(1)
	}

	if *trace {
		for _, n := range counts {
			traceAppends(n)
		}
		return
	}

	printGrowthTable(counts)
}

// resolveCounts parses positional arguments as non-negative element
// counts, warning about anything unusable. Without arguments it falls
// back to the default set.
func resolveCounts(args []string) []int {
	if len(args) == 0 {
		return defaultCounts
	}

	var counts []int
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			fmt.Fprintf(os.Stderr, "warning: invalid element count %q\n", arg)
			continue
		}
		counts = append(counts, n)
	}
	return counts
}

// growthReport holds the statistics of appending a given number of
// elements to a fresh array, observed from outside via Len and Cap.
type growthReport struct {
	appends  int
	size     int
	capacity int
	grows    int
	copied   int
}

func measureAppends(n int) growthReport {
	a := array.New[int]()

	var grows, copied int
	for i := 0; i < n; i++ {
		capBefore := a.Cap()
		sizeBefore := a.Len()
		a.Append((i + 1) * 10)
		if a.Cap() != capBefore {
			grows++
			copied += sizeBefore
		}
	}

	return growthReport{
		appends:  n,
		size:     a.Len(),
		capacity: a.Cap(),
		grows:    grows,
		copied:   copied,
	}
}

func printGrowthTable(counts []int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Appends\tSize\tCapacity\tGrows\tElements Copied\tLoad\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-------\t----\t--------\t-----\t---------------\t----\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, n := range counts {
		r := measureAppends(n)
		load := 100 * float64(r.size) / float64(r.capacity)

		if _, err := fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%.1f%%\n",
			r.appends,
			r.size,
			r.capacity,
			r.grows,
			r.copied,
			load,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func traceAppends(n int) {
	a := array.New[int]()

	fmt.Printf("appending %d elements:\n", n)
	fmt.Printf("  %s\n", a)
	for i := 0; i < n; i++ {
		a.Append((i + 1) * 10)
		fmt.Printf("  %s\n", a)
	}
}

// runDemo walks every container operation on a small array, printing
// the rendering after each step, then shows the out-of-range error.
func runDemo() {
	a := array.New[int]()
	step := func(desc string) {
		fmt.Printf("%-18s %s\n", desc, a)
	}

	step("new")
	for _, v := range []int{10, 20, 30} {
		a.Append(v)
		step(fmt.Sprintf("append %d", v))
	}

	if err := a.Insert(1, 15); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	step("insert 15 at 1")

	if err := a.Insert(0, 5); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	step("insert 5 at 0")

	v, err := a.Delete(0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	step(fmt.Sprintf("delete 0 -> %d", v))

	if v, err = a.Get(2); err == nil {
		fmt.Printf("%-18s %d\n", "get 2", v)
	}

	// Out of range: size is 4, so index 4 is rejected.
	if _, err = a.Get(a.Len()); err != nil {
		fmt.Printf("%-18s %v\n", fmt.Sprintf("get %d", a.Len()), err)
	}
}
