package handlers

import (
	"github.com/concave-dev/labform/cmd/labctl/config"
	"github.com/concave-dev/labform/cmd/labctl/utils"
	"github.com/concave-dev/labform/internal/form"
	"github.com/spf13/cobra"
)

// HandleSolve posts N, K and T given as flags, without reading a page.
func HandleSolve(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	params := form.GridParams{
		N: config.Solve.N,
		K: config.Solve.K,
		T: config.Solve.T,
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if err := config.ValidateFormSource(); err != nil {
		return err
	}

	return send(cmd, form.BuildPayload(params.Fields()))
}
