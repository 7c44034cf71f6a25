// Package format names the text representations a tree can be read from
// or written to.
//
// # Usage
//
//	f, err := format.ParseFormat("toml")
//	ext := f.Suffix()
//
// # Related Packages
//
//   - github.com/lymslive/tomlops/parse - Parse text to ir trees
//   - github.com/lymslive/tomlops/encode - Encode ir trees to text
package format
