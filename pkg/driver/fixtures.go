package driver

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"
)

// FixtureFile is one YAML file of golden cases.
type FixtureFile struct {
	Path     string
	Fixtures []Fixture
}

// Fixture is a program together with the output it must produce. Source is
// inline; Entry names a .lol file relative to the fixture file instead.
type Fixture struct {
	Name   string        `yaml:"name"`
	Source string        `yaml:"source"`
	Entry  string        `yaml:"entry"`
	Inputs []string      `yaml:"inputs"`
	Expect FixtureExpect `yaml:"expect"`

	dir string
}

// FixtureExpect lists the observable results of a run. Error is the
// stage-labelled report, e.g. "Runtime Error: Division by zero error.".
type FixtureExpect struct {
	Stdout []string `yaml:"stdout"`
	Error  string   `yaml:"error"`
}

type fixtureFileYAML struct {
	Fixtures []Fixture `yaml:"fixtures"`
}

// LoadFixtures parses a fixture file.
func LoadFixtures(path string) (*FixtureFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: read %s: %w", path, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var raw fixtureFileYAML
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("fixtures: parse %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for idx := range raw.Fixtures {
		fixture := &raw.Fixtures[idx]
		fixture.dir = dir
		if fixture.Name == "" {
			fixture.Name = fmt.Sprintf("case %d", idx+1)
		}
		if fixture.Source != "" && fixture.Entry != "" {
			return nil, fmt.Errorf("fixtures: %s: %q sets both source and entry", path, fixture.Name)
		}
		if fixture.Source == "" && fixture.Entry == "" {
			return nil, fmt.Errorf("fixtures: %s: %q needs source or entry", path, fixture.Name)
		}
	}
	return &FixtureFile{Path: path, Fixtures: raw.Fixtures}, nil
}

// CollectFixtureFiles expands directories into the .yml/.yaml files beneath
// them, sorted for a stable run order.
func CollectFixtureFiles(paths []string) ([]string, error) {
	var files []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("fixtures: %w", err)
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				return nil
			}
			switch filepath.Ext(path) {
			case ".yml", ".yaml":
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("fixtures: walk %s: %w", root, err)
		}
	}
	sort.Strings(files)
	return files, nil
}

// ResolveSource returns the program text and the path used in diagnostics.
func (f Fixture) ResolveSource() (string, string, error) {
	if f.Entry == "" {
		return f.Source, f.Name, nil
	}
	path := f.Entry
	if !filepath.IsAbs(path) {
		path = filepath.Join(f.dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", path, fmt.Errorf("fixtures: read entry %s: %w", path, err)
	}
	return string(data), path, nil
}

// Check compares a run against the expectation and describes every mismatch.
func (f Fixture) Check(stdout []string, runErr error) []string {
	var problems []string
	want := f.Expect.Stdout
	if len(want) == 0 {
		want = nil
	}
	got := stdout
	if len(got) == 0 {
		got = nil
	}
	if !reflect.DeepEqual(got, want) {
		problems = append(problems, fmt.Sprintf("stdout = %q, want %q", got, want))
	}
	report := ""
	if runErr != nil {
		report = ErrorReport(runErr)
	}
	if report != f.Expect.Error {
		switch {
		case f.Expect.Error == "":
			problems = append(problems, fmt.Sprintf("unexpected error: %s", report))
		case report == "":
			problems = append(problems, fmt.Sprintf("expected error %q, run succeeded", f.Expect.Error))
		default:
			problems = append(problems, fmt.Sprintf("error = %q, want %q", report, f.Expect.Error))
		}
	}
	return problems
}

// ErrorReport renders err the way the command-line tool prints it.
func ErrorReport(err error) string {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Report()
	}
	return err.Error()
}
