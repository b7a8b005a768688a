package main

import (
	"fmt"
	"os"

	"github.com/kaiserkarel/cronrule/cmd/cronrule/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
