package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
)

// NameConv rewrites a member name before it is emitted. A nil NameConv
// leaves names as written.
type NameConv func(string) string

var nameConvs = map[string]NameConv{
	"keep":            nil,
	"camel":           strcase.ToCamel,
	"lower-camel":     strcase.ToLowerCamel,
	"snake":           strcase.ToSnake,
	"screaming-snake": strcase.ToScreamingSnake,
}

// ParseNameConv looks up a member case by name. The empty string is the same
// as "keep".
func ParseNameConv(name string) (NameConv, error) {
	if name == "" {
		return nil, nil
	}
	conv, ok := nameConvs[name]
	if !ok {
		return nil, fmt.Errorf("unknown member case '%s', expected one of %s", name,
			strings.Join(nameConvNames(), ", "))
	}
	return conv, nil
}

func nameConvNames() []string {
	names := make([]string, 0, len(nameConvs))
	for name := range nameConvs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
