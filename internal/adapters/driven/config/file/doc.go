// Package file provides the TOML-backed ConfigStore adapter. Settings
// live in ~/.alexandria/config.toml and are addressed with dot-notation
// keys such as "compile.parse_level" or "publish.author_key".
package file
