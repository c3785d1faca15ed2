// Package file provides the TOML-backed ConfigStore adapter. Values
// persist to config.toml in the vendra config directory; nested
// tables flatten to dot-notation keys, and keys absent from the file
// fall back to built-in defaults.
package file
