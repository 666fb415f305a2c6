package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/driver"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/interpreter"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/session"
)

const defaultFixtureDir = "testdata"

type testSummary struct {
	Passed int
	Failed int
}

func runTest(args []string) int {
	targets := args
	if len(targets) == 0 {
		if _, err := os.Stat(defaultFixtureDir); errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(os.Stdout, "lolcode test: no fixture files found")
			return 0
		}
		targets = []string{defaultFixtureDir}
	}

	files, err := driver.CollectFixtureFiles(targets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lolcode test: %v\n", err)
		return 2
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stdout, "lolcode test: no fixture files found")
		return 0
	}

	var summary testSummary
	for _, path := range files {
		file, err := driver.LoadFixtures(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lolcode test: %v\n", err)
			return 2
		}
		for _, fixture := range file.Fixtures {
			runFixture(file.Path, fixture, &summary)
		}
	}

	fmt.Fprintf(os.Stdout, "%d passed, %d failed\n", summary.Passed, summary.Failed)
	if summary.Failed > 0 {
		return 1
	}
	return 0
}

func runFixture(path string, fixture driver.Fixture, summary *testSummary) {
	label := fmt.Sprintf("%s: %s", path, fixture.Name)
	source, origin, err := fixture.ResolveSource()
	if err != nil {
		summary.Failed++
		fmt.Fprintf(os.Stdout, "FAIL %s\n    %v\n", label, err)
		return
	}

	sess := session.New(source, fixture.Inputs...)
	sess.Path = origin
	result := sess.Run()
	problems := fixture.Check(result.Output, result.Err)
	if len(problems) == 0 {
		summary.Passed++
		fmt.Fprintf(os.Stdout, "ok   %s\n", label)
		return
	}

	summary.Failed++
	fmt.Fprintf(os.Stdout, "FAIL %s\n", label)
	for _, problem := range problems {
		fmt.Fprintf(os.Stdout, "    %s\n", problem)
	}
	if result.Err != nil {
		fmt.Fprintf(os.Stdout, "    %s\n", describeFailure(origin, result))
	}
}

func describeFailure(origin string, result *session.Result) string {
	if result.Stage == driver.StageRuntime {
		return interpreter.DescribeRuntimeDiagnostic(interpreter.BuildRuntimeDiagnostic(origin, result.Err))
	}
	return driver.DescribeSourceDiagnostic(driver.BuildSourceDiagnostic(origin, result.Err))
}
