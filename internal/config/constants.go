package config

// SourceFileExt is the conventional extension for September source
// text, matching original_source/py/septests.py's ".sep" fixtures.
const SourceFileExt = ".sep"

// ModuleFileExt is the extension cmd/septc appends to derive an output
// path when none is given explicitly (spec.md §6, SPEC_FULL.md §7).
const ModuleFileExt = ".09"

// ModuleMagic is the 4-byte ASCII magic every compiled module file
// opens with.
const ModuleMagic = "SEPT"

// FunctionTerminator marks the end of a function's instruction stream
// in the binary encoding.
const FunctionTerminator = 0xFF

// FileFooter marks the end of the module file, following the last
// function's stream.
const FileFooter = 0xFF
