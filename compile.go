package hbetl

import "github.com/nilfoss/hbetl/internal"

// Compile transpiles template using the default (Base dialect)
// registry.
func Compile(template string) (string, error) {
	return CompileWith(template, DefaultRegistry())
}

// CompileWith transpiles template using a caller-supplied registry.
func CompileWith(template string, reg *Registry) (string, error) {
	return internal.NewParser(reg.inner).Parse(template)
}

// MustCompile is like Compile but panics on error.
func MustCompile(template string) string {
	out, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return out
}

// MustCompileWith is like CompileWith but panics on error.
func MustCompileWith(template string, reg *Registry) string {
	out, err := CompileWith(template, reg)
	if err != nil {
		panic(err)
	}
	return out
}
