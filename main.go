package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <project-root>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

func run() error {
	if flag.NArg() != 1 {
		return errors.New("expected exactly one argument, the project root directory")
	}
	root := flag.Arg(0)
	report := NewReporter(os.Stderr, *flagDebug)
	conv, err := ParseNameConv(*flagCase)
	if err != nil {
		return err
	}
	var known TypeSet
	if *flagTypesHdr != "" {
		known, err = LoadTypeSet(report, *flagCPP, *flagInclude, *flagTypesHdr)
		if err != nil {
			return fmt.Errorf("loading types from file '%s': %w", *flagTypesHdr, err)
		}
	}
	emitter := DefaultEmitter()
	emitter.Extension = *flagExt
	emitter.Namespace = *flagNamespace
	gen := &Generator{
		Fs:         afero.NewOsFs(),
		Report:     report,
		Emitter:    emitter,
		NameConv:   conv,
		Strict:     *flagStrict,
		KnownTypes: known,
	}
	inputPath := underRoot(root, *flagInput)
	summary, err := gen.Generate(inputPath, underRoot(root, *flagOut))
	if err != nil {
		return fmt.Errorf("generating enums from file '%s': %w", inputPath, err)
	}
	report.Info("done", "lines", summary.Lines, "written", summary.Written, "malformed", summary.Malformed)
	return nil
}

func underRoot(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
