// Package version holds the release versions of labd and labctl. The two
// binaries are versioned independently.
// All versions follow semantic versioning (semver) conventions.

package version

// LabdVersion is the lab server version.
const LabdVersion = "0.1.0-dev"

// LabctlVersion is the CLI version, sent in the User-Agent header.
const LabctlVersion = "0.1.0-dev"
