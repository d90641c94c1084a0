// Package main provides the leetcode CLI: browse the solved problems and run
// any solution against a JSON input document.
package main

import (
	"os"
)

func main() {
	a := newApp()
	err := newRootCmd(a).Execute()
	_ = a.logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
