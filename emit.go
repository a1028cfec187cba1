package main

import (
	"bytes"
	"fmt"
	"path/filepath"
)

// Emitter renders resolved enums as C++ headers.
type Emitter struct {
	// Includes are emitted as quoted #include lines, in order.
	Includes  []string
	Namespace string
	// Extension is the file extension of generated headers, without the dot.
	Extension string
	// BitfieldMacro is invoked with the enum name for every enum that is not
	// bitfield exempt.
	BitfieldMacro string
}

// DefaultEmitter returns the emitter producing the ARLib header layout.
func DefaultEmitter() Emitter {
	return Emitter{
		Includes:      []string{"../Types.h", "../EnumHelpers.h"},
		Namespace:     "ARLib",
		Extension:     "h",
		BitfieldMacro: "MAKE_BITFIELD_ENUM",
	}
}

// Path returns the path of the header for r inside outDir.
func (e Emitter) Path(outDir string, r ResolvedEnum) string {
	return filepath.Join(outDir, r.Name+"."+e.Extension)
}

// Render returns the contents of the header for r.
func (e Emitter) Render(r ResolvedEnum) []byte {
	var buf bytes.Buffer
	buf.WriteString("#pragma once\n")
	for _, include := range e.Includes {
		fmt.Fprintf(&buf, "#include \"%s\"\n", include)
	}
	fmt.Fprintf(&buf, "namespace %s {\n", e.Namespace)
	fmt.Fprintf(&buf, "\tenum class %s : %s {\n", r.Name, r.UnderlyingType)
	for _, m := range r.Members {
		fmt.Fprintf(&buf, "\t\t%s = %d,\n", m.Name, m.Value)
	}
	buf.WriteString("\t};\n")
	if !r.BitfieldExempt {
		fmt.Fprintf(&buf, "\t%s(%s)\n", e.BitfieldMacro, r.Name)
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}
