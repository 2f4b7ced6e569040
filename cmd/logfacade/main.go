package main

import (
	"fmt"
	"os"

	"github.com/philipp01105/logfacade/internal/cli"
)

var version = "0.1.0" // default version if not set

func main() {
	if err := cli.Execute(version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
