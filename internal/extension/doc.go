// Package extension discovers installed extension packages on disk, loads
// their wheel metadata, and decides whether an extension's declared CLI
// version bounds allow it to run on this host. Discovery rescans the
// extensions root on every call; the root path is always an explicit
// parameter so tests can isolate their own trees.
package extension
