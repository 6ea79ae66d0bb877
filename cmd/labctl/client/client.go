// Package client builds the lab server clients labctl commands use from
// the global CLI configuration.
package client

import (
	"fmt"
	"time"

	"github.com/concave-dev/labform/cmd/labctl/config"
	configDefaults "github.com/concave-dev/labform/internal/config"
	"github.com/concave-dev/labform/internal/page"
	"github.com/concave-dev/labform/internal/submit"
)

// BaseURL returns the labd root URL for the --api address.
func BaseURL() string {
	return "http://" + config.Global.APIAddr
}

// Timeout converts the --timeout seconds flag.
func Timeout() time.Duration {
	return time.Duration(config.Global.Timeout) * time.Second
}

// PageURL is where labd serves the page of a lab.
func PageURL(labID int) string {
	return fmt.Sprintf("%s%s/lab%d", BaseURL(), configDefaults.LabsPath, labID)
}

// CreateSubmitter builds a Submitter for the selected lab.
func CreateSubmitter() (*submit.Submitter, error) {
	cfg := submit.DefaultConfig()
	cfg.BaseURL = BaseURL()
	cfg.LabID = config.Form.LabID
	cfg.Timeout = Timeout()
	cfg.UserAgent = fmt.Sprintf("labctl/%s", config.Version)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid submitter configuration: %w", err)
	}
	return submit.New(cfg), nil
}

// CreatePageSource picks the page named by --file or --page, falling back
// to the lab's page on labd.
func CreatePageSource() page.Source {
	switch {
	case config.Form.PageFile != "":
		return page.FileSource{Path: config.Form.PageFile}
	case config.Form.PageURL != "":
		return page.NewHTTPSource(config.Form.PageURL, Timeout())
	default:
		return page.NewHTTPSource(PageURL(config.Form.LabID), Timeout())
	}
}
