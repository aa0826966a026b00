// Package appmeta holds static information about the application itself.
package appmeta

import "fmt"

// Name is the official name of the scraper application, as displayed to the user
// and recorded in the database_metadata table.
const Name = "routedb-scraper"

var (
	// version is set via -ldflags during release builds.
	// For development builds this stays "dev".
	version = "dev"
	// commit is set via -ldflags during release builds.
	commit = "unknown"
	// buildTime is set via -ldflags during release builds, RFC3339.
	buildTime = "unknown"
)

// Version returns the compiled version, or "dev" if run from source.
func Version() string {
	return version
}

// Commit returns the VCS commit the binary was built from.
func Commit() string {
	return commit
}

// BuildTime returns the build timestamp, or "unknown" if run from source.
func BuildTime() string {
	return buildTime
}

// Vendor returns the "<name> <version>" string recorded in database_metadata.vendor.
func Vendor() string {
	return fmt.Sprintf("%s %s", Name, version)
}

// UserAgent returns the User-Agent string used for all outgoing HTTP requests.
func UserAgent() string {
	return fmt.Sprintf("%s/%s", Name, version)
}
