// Package utils holds small filesystem-path helpers shared by cmd/septc.
package utils

import (
	"path/filepath"
	"strings"

	"github.com/krajzeg/september/internal/config"
)

// ExtractModuleName derives a display name from a source path: the
// base filename with the source extension stripped.
func ExtractModuleName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, config.SourceFileExt)
}

// OutputPathFor derives the compiled module path from an input path
// when no explicit output was given (spec.md §6): the input's
// extension is replaced with ".09", or ".09" is appended again if the
// input already ends in ".09".
func OutputPathFor(inputPath string) string {
	if strings.HasSuffix(inputPath, config.ModuleFileExt) {
		return inputPath + config.ModuleFileExt
	}
	ext := filepath.Ext(inputPath)
	if ext == "" {
		return inputPath + config.ModuleFileExt
	}
	return strings.TrimSuffix(inputPath, ext) + config.ModuleFileExt
}
