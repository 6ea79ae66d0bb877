package submit

import (
	"fmt"
	"net/url"
	"time"

	"github.com/concave-dev/labform/internal/config"
	"github.com/concave-dev/labform/internal/validate"
	"github.com/concave-dev/labform/internal/version"
)

// Config holds the settings of a Submitter.
type Config struct {
	BaseURL   string        // Lab server root, e.g. "http://127.0.0.1:8080"
	LabID     int           // Value of the lab_id query parameter
	Timeout   time.Duration // Whole-request timeout; 0 waits indefinitely
	UserAgent string
}

// DefaultConfig targets lab 5 on the local lab server with no timeout.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   "http://" + config.DefaultServerAddr,
		LabID:     config.DefaultLabID,
		Timeout:   0,
		UserAgent: fmt.Sprintf("labctl/%s", version.LabctlVersion),
	}
}

// Validate checks the configuration before a Submitter is built from it.
func (c *Config) Validate() error {
	if err := validate.ValidateURL(c.BaseURL, "base URL"); err != nil {
		return err
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported base URL scheme %q", u.Scheme)
	}
	if err := validate.ValidateLabID(c.LabID); err != nil {
		return err
	}
	if err := validate.ValidateNonNegativeTimeout(c.Timeout, "timeout"); err != nil {
		return err
	}
	return nil
}
