// Package version reports draftboard build information.
package version

import (
	"fmt"
	"runtime"
	"strings"

	json "github.com/goccy/go-json"
)

// Name is the program name used in version output.
const Name = "draftboard"

// Info contains version information about draftboard.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	GoVer   string `json:"go_version"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// NewInfo creates a new Info from the build variables.
func NewInfo(version, commit, date string) *Info {
	return &Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// String returns a formatted version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", Name, i.Version, i.ShortCommit(), i.Date)
}

// ShortCommit returns the first seven characters of the commit hash.
func (i *Info) ShortCommit() string {
	if len(i.Commit) > 7 && !strings.ContainsAny(i.Commit, " ") {
		return i.Commit[:7]
	}
	return i.Commit
}

// FullString returns a detailed version string.
func (i *Info) FullString() string {
	return fmt.Sprintf(`%s %s
  Commit:   %s
  Built:    %s
  Go:       %s
  OS/Arch:  %s/%s`, Name, i.Version, i.Commit, i.Date, i.GoVer, i.OS, i.Arch)
}

// JSON returns the info as indented JSON.
func (i *Info) JSON() ([]byte, error) {
	return json.MarshalIndent(i, "", "  ")
}

// IsDev reports whether this is an unreleased build.
func (i *Info) IsDev() bool {
	return i.Version == "" || i.Version == "dev"
}
