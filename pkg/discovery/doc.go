// Package discovery locates Sway projects and source files on disk.
//
// It answers two questions for the surrounding build tooling: where is
// the nearest Forc manifest above or below a given path, and which files
// under a directory are Sway sources. Every function is a pure filesystem
// query over its arguments: no state is kept between calls, nothing is
// written, and repeated calls against an unchanged tree return identical
// results.
//
// Absence is an ordinary outcome, not an error. The locators report it
// through their boolean return, and a scan that hits an unreadable
// subdirectory skips it and keeps going rather than failing the whole
// traversal.
package discovery
