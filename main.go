package main

import (
	"fmt"
	"os"

	"github.com/Paintersrp/t2/internal/state"
	"github.com/Paintersrp/t2/pkg/cmd/root"
)

func main() {
	s, err := state.New("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cmd, err := root.NewCmdRoot(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
