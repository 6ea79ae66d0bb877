// Package config provides configuration management for the labctl CLI.
package config

import (
	configDefaults "github.com/concave-dev/labform/internal/config"
	"github.com/concave-dev/labform/internal/version"
)

const (
	DefaultAPIAddr = configDefaults.DefaultServerAddr // labd address
	DefaultLabID   = configDefaults.DefaultLabID
)

// Version is the labctl version shown by --version
var Version = version.LabctlVersion

// Global holds the global CLI configuration
var Global struct {
	APIAddr  string // Address of labd to connect to
	LogLevel string // Log level for CLI operations
	Timeout  int    // Request timeout in seconds, 0 waits indefinitely
	Verbose  bool   // Show verbose output
	Output   string // Output format: table, json
}

// Form holds the page selection flags shared by fields and submit
var Form struct {
	PageURL  string // Fetch the form from this URL
	PageFile string // Read the form from this saved page
	LabID    int    // Lab to fetch and submit to
}

// Submit holds the submit command configuration
var Submit struct {
	Set    []string // key=value pairs added after page fields
	Async  bool     // Fire the request and wait for the callback
	NoPage bool     // Skip reading a page, send only Set
}

// Solve holds the solve command configuration
var Solve struct {
	N string
	K string
	T string
}
