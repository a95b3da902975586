// Package version provides the release version of the module,
// stamped at build time.
package version

// Populated at build time with -ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

// Info describes the build version.
type Info struct {
	Version string
	Commit  string
}

// Current returns the current build version.
func Current() Info {
	return Info{
		Version: version,
		Commit:  commit,
	}
}

// String returns the version, with the commit appended when known.
func (v Info) String() string {
	if v.Commit != "" {
		return v.Version + "+" + v.Commit
	}
	return v.Version
}
