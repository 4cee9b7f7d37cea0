// Package file provides the TOML-backed ConfigStore.
// Configuration lives in config.toml inside the specxtract config
// directory (~/.specxtract by default).
package file
