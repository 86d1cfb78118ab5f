package extension

import "fmt"

// NotInstalledError reports a lookup for an extension that is not present
// under the extensions root.
type NotInstalledError struct {
	Name string
}

func (e *NotInstalledError) Error() string {
	return fmt.Sprintf("the extension %q is not installed", e.Name)
}

// MalformedError reports an extension package that violates the packaging
// contract, such as a missing or ambiguous code module directory. It signals
// a broken build of the extension, not a runtime input error.
type MalformedError struct {
	Path   string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed extension package at %s: %s", e.Path, e.Reason)
}
