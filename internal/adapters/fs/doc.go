// Package fs implements the file system adapters: the line-oriented country
// loader and the append-only report file.
package fs
