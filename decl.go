package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrMalformedLine is wrapped by every error describing a line that is
// neither blank, a comment, nor a valid declaration.
var ErrMalformedLine = errors.New("malformed declaration")

// EnumDecl is a declaration as written in the definitions file, before any
// type inference or value assignment.
type EnumDecl struct {
	Name           string
	BitfieldExempt bool
	// UnderlyingType is empty when the storage type must be inferred.
	UnderlyingType string
	Members        []string
}

// LineKind tells what ClassifyLine made of a line.
type LineKind int

const (
	LineSkip LineKind = iota
	LineDecl
	LineMalformed
)

func (k LineKind) String() string {
	switch k {
	case LineSkip:
		return "skip"
	case LineDecl:
		return "declaration"
	case LineMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("LineKind(%d)", int(k))
	}
}

// Line is one classified line of the definitions file. Decl is only set when
// Kind is LineDecl and Err only when Kind is LineMalformed.
type Line struct {
	Num  int
	Kind LineKind
	Decl EnumDecl
	Err  error
}

// declaration
//   : IDENT [ "<>" ] "(" [ IDENT ] ")" "[" [ IDENT { "," IDENT } ] "]"
//   ;
type declGrammar struct {
	Name    string   `parser:"@Ident"`
	Exempt  bool     `parser:"@Exempt?"`
	Type    string   `parser:"'(' @Ident? ')'"`
	Members []string `parser:"'[' ( @Ident ( ',' @Ident )* )? ']'"`
}

var declLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Exempt", Pattern: ExemptMarker},
	{Name: "Punct", Pattern: `[()\[\],]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var declParser = participle.MustBuild[declGrammar](
	participle.Lexer(declLexer),
	participle.Elide("Whitespace"),
)

// ClassifyLine classifies a single line of input. The returned Line has no
// line number.
func ClassifyLine(text string) Line {
	text = strings.TrimSpace(text)
	if len(text) == 0 || text[0] == CommentMarker {
		return Line{Kind: LineSkip}
	}
	g, err := declParser.ParseString("", text)
	if err != nil {
		return Line{Kind: LineMalformed, Err: fmt.Errorf("%w: %w", ErrMalformedLine, err)}
	}
	return Line{
		Kind: LineDecl,
		Decl: EnumDecl{
			Name:           g.Name,
			BitfieldExempt: g.Exempt,
			UnderlyingType: g.Type,
			Members:        g.Members,
		},
	}
}

// ReadLines classifies every line read from r, in order, numbering them from
// 1.
func ReadLines(r io.Reader) ([]Line, error) {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	var lines []Line
	for scanner.Scan() {
		lineNum++
		line := ClassifyLine(scanner.Text())
		line.Num = lineNum
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return lines, nil
}
