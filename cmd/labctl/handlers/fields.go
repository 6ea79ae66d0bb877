package handlers

import (
	"github.com/concave-dev/labform/cmd/labctl/display"
	"github.com/concave-dev/labform/cmd/labctl/utils"
	"github.com/concave-dev/labform/internal/form"
	"github.com/concave-dev/labform/internal/logging"
	"github.com/spf13/cobra"
)

// HandleFields prints the labeled inputs of a page and the payload a
// submission would send, without sending anything.
func HandleFields(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	fields, err := loadFields(contextOrBackground(cmd.Context()))
	if err != nil {
		return err
	}

	display.DisplayFields(cmd.OutOrStdout(), fields, form.BuildPayload(fields))
	logging.Success("Found %d labeled inputs", len(fields))
	return nil
}
