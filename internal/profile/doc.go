// Package profile locates the login shell profile that receives export
// statements. Candidates are tried in a fixed order and the first one is
// created when none exist.
package profile
