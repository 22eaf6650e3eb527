package cmd

import "github.com/cristianoliveira/dexview/internal/version"

// Version returns the version string shown in help and by --version.
func Version() string {
	return version.String()
}
