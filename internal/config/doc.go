// Package config loads the optional envperm configuration file. Every key has
// a default, so a missing file is not an error.
package config
