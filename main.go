package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/vibeshield/shield/commands"
)

func main() {
	parser := flags.NewParser(&commands.Shield, flags.HelpFlag)
	parser.NamespaceDelimiter = "-"

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
