package main

import "flag"

var (
	flagCase = flag.String("case", "keep", "rewrite member names before emitting them; one of keep, camel, "+
		"lower-camel, snake, screaming-snake")
	flagCPP       = flag.String("cpp", "cpp", "path to the C preprocessor, used with -types-header")
	flagDebug     = flag.Bool("debug", false, "enable debug logging")
	flagExt       = flag.String("ext", "h", "file extension of generated headers")
	flagInclude   = flag.String("include", "", "append to include path, used with -types-header")
	flagInput     = flag.String("input", DefinitionsFile, "path to the enum definitions, relative to the project root")
	flagNamespace = flag.String("namespace", "ARLib", "C++ namespace wrapping the generated enums")
	flagOut       = flag.String("out", GeneratedDir, "output directory, relative to the project root")
	flagStrict    = flag.Bool("strict", false, "fail on malformed lines instead of warning about them")
	flagTypesHdr  = flag.String("types-header", "", "path to a C header whose typedefs are the only allowed "+
		"underlying types; empty disables the check")
)
