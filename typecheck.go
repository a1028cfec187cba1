package main

import (
	"errors"
	"fmt"

	"modernc.org/cc/v3"
)

// ErrUnknownType is wrapped when an underlying type is not in the TypeSet.
var ErrUnknownType = errors.New("unknown underlying type")

// TypeSet holds the names that may be used as an underlying type. A nil
// TypeSet accepts every name.
type TypeSet map[string]struct{}

// Check returns an error wrapping ErrUnknownType if name is not in s.
func (s TypeSet) Check(name string) error {
	if s == nil {
		return nil
	}
	if _, ok := s[name]; !ok {
		return fmt.Errorf("%w '%s'", ErrUnknownType, name)
	}
	return nil
}

// builtinTypes are the single-keyword integer types of C, which are valid
// underlying types without any typedef.
var builtinTypes = []string{"char", "short", "int", "long", "bool"}

// LoadTypeSet parses the C header fileName with the host preprocessor
// configuration and returns every typedef name it declares, plus the builtin
// integer types.
func LoadTypeSet(report Reporter, cpp, include, fileName string) (TypeSet, error) {
	report.Debug("determining host configuration from C preprocessor", "cpp", cpp)
	predefined, includePaths, sysIncludePaths, err := cc.HostConfig(cpp)
	if err != nil {
		return nil, fmt.Errorf("obtaining host configuration: %w", err)
	}
	if include != "" {
		report.Debug("appending to include paths", "path", include)
		includePaths = append(includePaths, include)
	}
	sources := []cc.Source{
		{Name: "__predefined__", Value: predefined},
		{Name: fileName},
	}
	report.Debug("parsing types header", "file", fileName)
	ast, err := cc.Parse(&cc.Config{}, includePaths, sysIncludePaths, sources)
	if err != nil {
		return nil, fmt.Errorf("parsing sources: %w", err)
	}
	types := typedefNames(ast)
	for _, name := range builtinTypes {
		types[name] = struct{}{}
	}
	report.Debug("loaded known types", "count", len(types))
	return types, nil
}

func typedefNames(ast *cc.AST) TypeSet {
	types := make(TypeSet)
	// translation_unit
	//   : external_declaration
	//   | translation_unit external_declaration
	//   ;
	for tu := ast.TranslationUnit; tu != nil; tu = tu.TranslationUnit {
		// external_declaration
		//   : function_definition
		//   | declaration
		//   ;
		decln := tu.ExternalDeclaration.Declaration
		if decln == nil || !isTypedef(decln.DeclarationSpecifiers) {
			continue
		}
		// init_declarator_list
		//   : init_declarator
		//   | init_declarator_list ',' init_declarator
		//   ;
		for idl := decln.InitDeclaratorList; idl != nil; idl = idl.InitDeclaratorList {
			if idecl := idl.InitDeclarator; idecl != nil && idecl.Declarator != nil {
				types[idecl.Declarator.Name().String()] = struct{}{}
			}
		}
	}
	return types
}

func isTypedef(declSpec *cc.DeclarationSpecifiers) bool {
	// declaration_specifiers
	//   : storage_class_specifier
	//   | storage_class_specifier declaration_specifiers
	//   | type_specifier
	//   | type_specifier declaration_specifiers
	//   | type_qualifier
	//   | type_qualifier declaration_specifiers
	//   ;
	for ds := declSpec; ds != nil; ds = ds.DeclarationSpecifiers {
		if scs := ds.StorageClassSpecifier; scs != nil && scs.Case == cc.StorageClassSpecifierTypedef {
			return true
		}
	}
	return false
}
