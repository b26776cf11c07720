// Package main contains Mage build targets for pathway-engine developer
// tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/pathway-engine/internal/refdata"
)

// projectDirs lists the working directories the CLI expects.
var projectDirs = []string{
	"refdata",
	"evidence",
}

// Init creates the project directory structure.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "pathway-engine"
	cmdPkg  = "./cmd/pathway-engine"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	mg.Deps(Init)

	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Refdata verifies that the bundled reference tables parse.
func Refdata() error {
	table, err := refdata.LoadInteractions(refdata.DefaultDir)
	if err != nil {
		return err
	}
	matrix, err := refdata.LoadMatrix(refdata.DefaultDir)
	if err != nil {
		return err
	}

	sample := "TP53"
	fmt.Printf("%s: %d partners, %d pathways\n",
		sample,
		len(table.Partners(sample, false)),
		len(matrix.ProteinPathways(sample)))
	fmt.Printf("matrix: %d pathways\n", len(matrix.Pathways()))
	fmt.Println("Reference tables OK.")
	return nil
}
