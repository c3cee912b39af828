// Package build holds the build information injected via ldflags.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String formats the info as a single version line.
func (i Info) String() string {
	return fmt.Sprintf("fontify %s (commit %s, built %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion)
}
