// Package config loads the client configuration from a YAML file.
//
// ${VAR_NAME} references inside the file are expanded from the environment
// before parsing, and individual fields can be overridden with PRESTASI_*
// environment variables. A missing file is fine; every field has a default.
package config
