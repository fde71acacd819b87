// Command base79-random shows how slowly keys grow under random insertion.
//
// It starts with a single key at the midpoint and repeatedly inserts a new
// key at a random position: averaged with zero before the first key, with one
// after the last, and with both neighbours anywhere else. It prints every key,
// the length of the longest key and the average key length.
package main

import (
	"os"
)

func main() {
	if err := Main().Execute(); err != nil {
		os.Exit(1)
	}
}
