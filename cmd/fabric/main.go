// Command fabric reads fabric claims and reports the cells claimed more than
// once and the claims which overlap no other claim.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
