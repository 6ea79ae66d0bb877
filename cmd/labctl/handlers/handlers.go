// Package handlers provides command handler functions for labctl.
//
// - fields.go: show the labeled inputs of a lab page and the payload
// - submit.go: build the payload from a page and post it to labd
// - solve.go: post typed grid parameters without reading a page
//
// Handlers return errors to cobra and print through the display package.
package handlers

import (
	"context"
	"fmt"

	"github.com/concave-dev/labform/cmd/labctl/client"
	"github.com/concave-dev/labform/cmd/labctl/config"
	"github.com/concave-dev/labform/internal/form"
	"github.com/concave-dev/labform/internal/logging"
	"github.com/concave-dev/labform/internal/page"
)

// loadFields reads the page selected by --file/--page, or the lab's page
// on labd when neither is set.
func loadFields(ctx context.Context) ([]form.Field, error) {
	if err := config.ValidateFormSource(); err != nil {
		return nil, err
	}

	src := client.CreatePageSource()
	logging.Info("Reading form from %s", src)

	fields, err := page.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to read form: %w", err)
	}
	return fields, nil
}
