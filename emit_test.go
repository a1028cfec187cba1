package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitterRender(t *testing.T) {
	t.Run("Should render bitfield enum", func(t *testing.T) {
		r := ResolvedEnum{
			Name:           "Color",
			UnderlyingType: "uint8_t",
			Members:        []Member{{"Red", 0}, {"Green", 1}, {"Blue", 2}},
		}
		expected := "#pragma once\n" +
			"#include \"../Types.h\"\n" +
			"#include \"../EnumHelpers.h\"\n" +
			"namespace ARLib {\n" +
			"\tenum class Color : uint8_t {\n" +
			"\t\tRed = 0,\n" +
			"\t\tGreen = 1,\n" +
			"\t\tBlue = 2,\n" +
			"\t};\n" +
			"\tMAKE_BITFIELD_ENUM(Color)\n" +
			"}\n"
		assert.Equal(t, expected, string(DefaultEmitter().Render(r)))
	})

	t.Run("Should omit the macro for exempt enums", func(t *testing.T) {
		r := ResolvedEnum{
			Name:           "Mode",
			BitfieldExempt: true,
			UnderlyingType: "uint8_t",
			Members:        []Member{{"Off", 0}, {"On", 1}},
		}
		out := string(DefaultEmitter().Render(r))
		assert.NotContains(t, out, "MAKE_BITFIELD_ENUM")
		assert.Contains(t, out, "\t};\n}\n")
	})

	t.Run("Should honor custom namespace and includes", func(t *testing.T) {
		e := Emitter{
			Includes:      []string{"types.hpp"},
			Namespace:     "Game",
			Extension:     "hpp",
			BitfieldMacro: "FLAGS",
		}
		r := ResolvedEnum{Name: "Empty", UnderlyingType: "uint8_t"}
		expected := "#pragma once\n" +
			"#include \"types.hpp\"\n" +
			"namespace Game {\n" +
			"\tenum class Empty : uint8_t {\n" +
			"\t};\n" +
			"\tFLAGS(Empty)\n" +
			"}\n"
		assert.Equal(t, expected, string(e.Render(r)))
	})
}

func TestEmitterPath(t *testing.T) {
	r := ResolvedEnum{Name: "Color"}
	assert.Equal(t, filepath.Join("out", "Color.h"), DefaultEmitter().Path("out", r))
	e := DefaultEmitter()
	e.Extension = "hpp"
	assert.Equal(t, filepath.Join("out", "Color.hpp"), e.Path("out", r))
}
