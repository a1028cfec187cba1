package main

const (
	// CommentMarker starts a comment line in the definitions file. Only a
	// marker in the first non-blank column counts.
	CommentMarker = '#'
	// ExemptMarker follows an enum name and indicates that the enum must not
	// be registered with the bitfield operator macro. Member values are
	// assigned the same way either way.
	ExemptMarker = "<>"
	// DefinitionsFile is the name of the input file inside the project root.
	DefinitionsFile = "enum_definitions.impl"
	// GeneratedDir is the name of the output directory inside the project
	// root.
	GeneratedDir = "GeneratedEnums"
)
