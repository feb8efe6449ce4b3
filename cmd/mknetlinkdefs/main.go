// Command mknetlinkdefs prints the host values of a curated list of netlink
// constants, one "NAME = value" line per constant, in manifest order. Binding
// generators for other languages consume this output at build time, since the
// authoritative values live in the kernel headers of the build host.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
)

type entry struct {
	name  string
	value int
}

func emit(w io.Writer, entries []entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s = %d\n", e.name, e.value); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	w := bufio.NewWriter(os.Stdout)
	if err := emit(w, manifest); err != nil {
		log.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}
