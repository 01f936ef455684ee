// Package changelog parses and rewrites changelog documents that mark each
// version section with an underlined heading:
//
//	0.2.0 (2014-08-11)
//	------------------
//
//	* Fixed a bug
//
// This package implements:
//   - Border and heading detection for a caller-supplied border character
//   - Parsing text or a line stream into a preamble plus ordered entries
//   - Version lookup, including the "latest" sentinel
//   - Lossless re-rendering of parsed documents
//   - Mutations of the latest entry persisted through a Store
//
// Known quirk: "latest" is a lookup sentinel that always resolves to the first
// entry. An entry whose heading literally starts with "latest" cannot be
// addressed by version lookup; it is parsed and rendered like any other entry.
package changelog
