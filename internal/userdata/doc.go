// Package userdata resolves paths under the ~/.veld/ directory, including
// the extensions root where installed extension packages live. Every path
// helper honors an env var override so tests and CI can relocate the tree.
package userdata
