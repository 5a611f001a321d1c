package main

import (
	"fmt"
	"os"

	"github.com/go-arcade/roster/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(initApp).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
