//go:build mage

// Package main contains Mage build targets for presentation-formatter
// developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

const (
	binDir  = "bin"
	binName = "presentation-formatter"
	cmdPkg  = "./cmd/presentation-formatter"

	sampleInput  = "testdata/sample.json"
	sampleOutput = "output.md"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := run("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Install copies the built binary into GOBIN via go install.
func Install() error {
	mg.Deps(Build)
	if err := run("go", "install", cmdPkg); err != nil {
		return fmt.Errorf("go install: %w", err)
	}
	fmt.Println("Installed", binName)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return run("go", "test", "./...")
}

// Sample converts testdata/sample.json into output.md with the built binary.
func Sample() error {
	mg.Deps(Build)
	return run(filepath.Join(binDir, binName), "convert",
		"--input-file", sampleInput,
		"--output-file", sampleOutput)
}

// run executes name with args, streaming output to the terminal.
func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Clean removes the built binary and the sample output.
func Clean() error {
	for _, path := range []string{binDir, sampleOutput} {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
	}
	return nil
}
