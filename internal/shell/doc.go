// Package shell builds the POSIX export statements that envperm appends to a
// shell profile. It only formats text; it never touches the filesystem.
package shell
