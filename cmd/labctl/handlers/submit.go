package handlers

import (
	"context"
	"errors"

	"github.com/concave-dev/labform/cmd/labctl/client"
	"github.com/concave-dev/labform/cmd/labctl/config"
	"github.com/concave-dev/labform/cmd/labctl/display"
	"github.com/concave-dev/labform/cmd/labctl/utils"
	"github.com/concave-dev/labform/internal/form"
	"github.com/concave-dev/labform/internal/logging"
	"github.com/concave-dev/labform/internal/netutil"
	"github.com/concave-dev/labform/internal/submit"
	"github.com/spf13/cobra"
)

// HandleSubmit reads the form, applies --set overrides and posts the
// payload. --no-page sends the --set values alone. With --async the
// request is fired and the command waits for its callback, as the page's
// Solve button does.
func HandleSubmit(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	overrides, err := utils.ParseAssignments(config.Submit.Set)
	if err != nil {
		return err
	}

	var fields []form.Field
	if config.Submit.NoPage {
		if err := config.ValidateFormSource(); err != nil {
			return err
		}
	} else {
		fields, err = loadFields(contextOrBackground(cmd.Context()))
		if err != nil {
			return err
		}
	}

	fields = append(fields, overrides...)
	return send(cmd, form.BuildPayload(fields))
}

// send posts payload and reports the outcome
func send(cmd *cobra.Command, payload *form.Payload) error {
	submitter, err := client.CreateSubmitter()
	if err != nil {
		return err
	}
	defer submitter.Close()

	ctx := contextOrBackground(cmd.Context())
	logging.Info("Submitting %d fields to lab %d at %s", payload.Len(), config.Form.LabID, client.BaseURL())

	var (
		res     *submit.Result
		sendErr error
	)
	if config.Submit.Async {
		submitter.Fire(ctx, payload, func(r *submit.Result, err error) {
			submit.LogCompletion(r, err)
			res, sendErr = r, err
		})
		submitter.Wait()
	} else {
		res, sendErr = submitter.Submit(ctx, payload)
	}

	display.DisplayResult(cmd.OutOrStdout(), res, sendErr)
	if sendErr != nil {
		var statusErr *submit.StatusError
		switch {
		case errors.As(sendErr, &statusErr):
			logging.Error("Lab %d rejected the submission with status %d", config.Form.LabID, statusErr.StatusCode)
		case netutil.IsConnectionRefusedError(sendErr):
			logging.Error("TIP: Check that labd is running and reachable at %s", config.Global.APIAddr)
		}
		return sendErr
	}

	if res.Response.IsFinished {
		logging.Success("Lab %d finished", config.Form.LabID)
	}
	return nil
}

// contextOrBackground guards handlers invoked outside Execute
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
