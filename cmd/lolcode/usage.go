package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  lolcode <file.lol>")
	fmt.Fprintln(os.Stderr, "  lolcode run [target | file.lol]")
	fmt.Fprintln(os.Stderr, "  lolcode check [target | file.lol]")
	fmt.Fprintln(os.Stderr, "  lolcode tokens <file.lol>")
	fmt.Fprintln(os.Stderr, "  lolcode ast [--format=json|yaml] <file.lol>")
	fmt.Fprintln(os.Stderr, "  lolcode inspect [--input value]... <file.lol>")
	fmt.Fprintln(os.Stderr, "  lolcode test [paths]")
	fmt.Fprintln(os.Stderr, "  lolcode fetch [target ...]")
}
