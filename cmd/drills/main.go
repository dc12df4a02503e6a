package main

import (
	"fmt"
	"os"
)

func main() {
	Execute()
}

// fatal reports err on stderr and exits 1.
func fatal(msg string, err error) {
	fmt.Fprintln(os.Stderr, errorLine(msg, err))
	os.Exit(1)
}

func errorLine(msg string, err error) string {
	return fmt.Sprintf("drills: %s: %v", msg, err)
}
