package main

import (
	"fmt"
	"os"
)

// Demo of Delaunay triangulation and point location.
//
// Points come from --random N, from a file given with --in (newline separated
// "x y") or --svg (circle centres and polygon vertices), or from stdin. The
// query point is --query "x,y", or a random convex combination of the input.
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "delaunay:", err)
		os.Exit(1)
	}
}
