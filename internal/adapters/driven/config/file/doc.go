// Package file loads the jiravec configuration from a TOML file.
// The bundle is read and validated once at startup; nothing re-reads it.
package file
