package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/ElijahMwambazi/clipb/internal/cli"
)

func main() {
	var args cli.Args
	arg.MustParse(&args)

	handler, err := cli.New(&args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := handler.Execute(&args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
