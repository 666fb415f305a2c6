package main

import (
	"errors"
	"fmt"
	"os"
)

const cliToolVersion = "lolcode 0.1.0"

var errManifestNotFound = errors.New("lolcode.yml not found")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runEntry(args[1:])
	case "check":
		return runCheck(args[1:])
	case "tokens":
		return runTokens(args[1:])
	case "ast":
		return runAST(args[1:])
	case "inspect":
		return runInspect(args[1:])
	case "test":
		return runTest(args[1:])
	case "fetch":
		return runFetch(args[1:])
	default:
		return runEntry(args)
	}
}
