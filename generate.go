package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Generator turns a definitions file into one header per declared enum.
type Generator struct {
	Fs       afero.Fs
	Report   Reporter
	Emitter  Emitter
	NameConv NameConv
	// Strict makes malformed lines abort the run instead of being reported
	// and skipped.
	Strict bool
	// KnownTypes restricts the underlying types that may be emitted. Nil
	// disables the check.
	KnownTypes TypeSet
}

// Summary counts what a run did with the lines of its input.
type Summary struct {
	Lines     int
	Skipped   int
	Malformed int
	Written   int
}

// Generate reads the definitions in inputPath and writes the headers into
// outDir, creating it if needed. Lines are handled in file order and the first
// fatal error stops the run; headers written before it are left in place.
func (g *Generator) Generate(inputPath, outDir string) (Summary, error) {
	report := g.Report
	if report == nil {
		report = nopReporter{}
	}
	var summary Summary
	file, err := g.Fs.Open(inputPath)
	if err != nil {
		return summary, fmt.Errorf("opening definitions: %w", err)
	}
	defer file.Close()
	lines, err := ReadLines(file)
	if err != nil {
		return summary, fmt.Errorf("reading definitions in file '%s': %w", inputPath, err)
	}
	if err := g.Fs.MkdirAll(outDir, dirPerm); err != nil {
		return summary, fmt.Errorf("creating output directory: %w", err)
	}
	for _, line := range lines {
		summary.Lines++
		switch line.Kind {
		case LineSkip:
			summary.Skipped++
			report.Debug("skipping line", "line", line.Num)
			continue
		case LineMalformed:
			summary.Malformed++
			if g.Strict {
				return summary, fmt.Errorf("line %d: %w", line.Num, line.Err)
			}
			report.Warn("ignoring line", "line", line.Num, "err", line.Err)
			continue
		}
		path, err := g.generateOne(line.Decl, outDir)
		if err != nil {
			return summary, fmt.Errorf("line %d: %w", line.Num, err)
		}
		summary.Written++
		report.Info("generated enum", "line", line.Num, "enum", line.Decl.Name, "path", path)
	}
	return summary, nil
}

func (g *Generator) generateOne(decl EnumDecl, outDir string) (string, error) {
	resolved, err := Resolve(decl, g.NameConv)
	if err != nil {
		return "", err
	}
	if err := g.KnownTypes.Check(resolved.UnderlyingType); err != nil {
		return "", fmt.Errorf("enum %s: %w", resolved.Name, err)
	}
	path := g.Emitter.Path(outDir, resolved)
	if err := afero.WriteFile(g.Fs, path, g.Emitter.Render(resolved), filePerm); err != nil {
		return "", fmt.Errorf("writing enum %s: %w", resolved.Name, err)
	}
	return path, nil
}
