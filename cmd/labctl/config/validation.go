package config

import (
	"fmt"
	"strings"

	"github.com/concave-dev/labform/internal/logging"
	"github.com/concave-dev/labform/internal/validate"
	"github.com/spf13/cobra"
)

// ValidateGlobalFlags validates all global flags before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := ValidateAPIAddress(); err != nil {
		return err
	}

	if err := ValidateOutputFormat(); err != nil {
		return err
	}

	Global.LogLevel = strings.ToUpper(Global.LogLevel)
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return err
	}

	if Global.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}

	return nil
}

// ValidateAPIAddress validates the --api flag
func ValidateAPIAddress() error {
	addr, err := validate.ParseServerAddress(Global.APIAddr)
	if err != nil {
		logging.Error("Invalid API address '%s': %v", Global.APIAddr, err)
		return fmt.Errorf("invalid API address - expected format: host:port (e.g., 127.0.0.1:8080)")
	}

	// 0.0.0.0 is a listen address, not something a client can dial
	if addr.Host == "0.0.0.0" {
		logging.Error("Unroutable API address '%s'", Global.APIAddr)
		return fmt.Errorf("unroutable API address - use 127.0.0.1 or a specific IP address")
	}

	return nil
}

// ValidateOutputFormat validates the --output flag
func ValidateOutputFormat() error {
	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutputs[Global.Output] {
		logging.Error("Invalid output format '%s' - valid formats are: table, json", Global.Output)
		return fmt.Errorf("invalid output format - valid: table, json")
	}
	return nil
}

// ValidateFormSource checks that at most one page source was given
func ValidateFormSource() error {
	if Submit.NoPage && (Form.PageURL != "" || Form.PageFile != "") {
		return fmt.Errorf("--no-page cannot be combined with --page or --file")
	}
	if Form.PageURL != "" && Form.PageFile != "" {
		return fmt.Errorf("--page and --file are mutually exclusive")
	}
	if Form.PageURL != "" {
		if err := validate.ValidateURL(Form.PageURL, "page URL"); err != nil {
			return err
		}
	}
	return validate.ValidateLabID(Form.LabID)
}
