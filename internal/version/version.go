// Package version holds the build version string, overridable at link
// time with -ldflags "-X numex/internal/version.Version=...".
package version

var Version = "0.3.0"
