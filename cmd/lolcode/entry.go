package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/driver"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/interpreter"
)

type executionMode int

const (
	modeRun executionMode = iota
	modeCheck
)

func modeCommandLabel(mode executionMode) string {
	switch mode {
	case modeCheck:
		return "lolcode check"
	default:
		return "lolcode run"
	}
}

func runEntry(args []string) int {
	return runEntryWithMode(args, modeRun)
}

func runCheck(args []string) int {
	return runEntryWithMode(args, modeCheck)
}

func runEntryWithMode(args []string, mode executionMode) int {
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		return 1
	}

	manifest, err := loadManifestFrom(".")
	if err != nil {
		switch {
		case errors.Is(err, errManifestNotFound):
			manifest = nil
		case len(args) == 1 && looksLikePathCandidate(args[0]):
			fmt.Fprintf(os.Stderr, "warning: unable to load manifest (%v); falling back to direct file execution\n", err)
			manifest = nil
		default:
			fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", err)
			return 1
		}
	}

	if len(args) == 0 {
		if manifest == nil {
			fmt.Fprintf(os.Stderr, "%s requires a manifest target or source file (%s not found)\n", modeCommandLabel(mode), driver.ManifestFileName)
			return 1
		}
		target, err := manifest.DefaultTarget()
		if err != nil {
			fmt.Fprintf(os.Stderr, "manifest error: %v\n", err)
			return 1
		}
		return executeTarget(manifest, target, mode)
	}

	if manifest != nil {
		if target, ok := manifest.FindTarget(args[0]); ok {
			return executeTarget(manifest, target, mode)
		}
	}
	return executeEntry(args[0], nil, mode)
}

func executeTarget(manifest *driver.Manifest, target *driver.TargetSpec, mode executionMode) int {
	lock, err := loadLockfileForManifest(manifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	entryPath, err := resolveTargetMain(manifest, lock, target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve target %q: %v\n", target.OriginalName, err)
		return 1
	}
	return executeEntry(entryPath, target.Inputs, mode)
}

// executeEntry runs a single source file. Queued inputs are served to GIMMEH
// before falling back to stdin.
func executeEntry(entry string, inputs []string, mode executionMode) int {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		fmt.Fprintf(os.Stderr, "%s requires a source file\n", modeCommandLabel(mode))
		return 1
	}

	program, err := driver.LoadProgram(entry)
	if err != nil {
		var stageErr *driver.StageError
		if !errors.As(err, &stageErr) {
			fmt.Fprintf(os.Stderr, "failed to load program: %v\n", err)
			return 1
		}
		if mode == modeCheck {
			fmt.Fprintln(os.Stderr, driver.DescribeSourceDiagnostic(driver.BuildSourceDiagnostic(entry, err)))
			return 1
		}
		fmt.Fprintln(os.Stderr, stageErr.Report())
		return 1
	}

	if mode == modeCheck {
		fmt.Fprintln(os.Stdout, "check: ok")
		return 0
	}

	interp := interpreter.New()
	if len(inputs) > 0 {
		input := interpreter.NewQueuedInput(inputs...)
		input.Fallback = interpreter.NewLineReader(os.Stdin)
		interp = interpreter.NewWithIO(os.Stdout, input)
	}
	if _, err := interp.EvaluateProgram(program); err != nil {
		fmt.Fprintln(os.Stderr, driver.ErrorReport(err))
		return 1
	}
	return 0
}
