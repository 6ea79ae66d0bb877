// Package display formats labctl output as tables or JSON.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/concave-dev/labform/cmd/labctl/config"
	"github.com/concave-dev/labform/internal/form"
	"github.com/concave-dev/labform/internal/logging"
	"github.com/concave-dev/labform/internal/submit"
)

var (
	finishedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// fieldsOutput is the JSON shape of DisplayFields
type fieldsOutput struct {
	Fields  []form.Field  `json:"fields"`
	Payload *form.Payload `json:"payload"`
}

// resultOutput is the JSON shape of DisplayResult
type resultOutput struct {
	RequestID  string          `json:"request_id"`
	StatusCode int             `json:"status_code"`
	Duration   string          `json:"duration"`
	Finished   bool            `json:"finished"`
	Progress   *float64        `json:"progress,omitempty"`
	Response   json.RawMessage `json:"response,omitempty"`
	Error      string          `json:"error,omitempty"`
}

func writeJSON(w io.Writer, v any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logging.Error("Failed to encode JSON: %v", err)
		fmt.Fprintln(w, "Error encoding JSON output")
	}
}

// DisplayFields prints the extracted fields and the payload they produce.
func DisplayFields(w io.Writer, fields []form.Field, payload *form.Payload) {
	if config.Global.Output == "json" {
		writeJSON(w, fieldsOutput{Fields: fields, Payload: payload})
		return
	}

	if len(fields) == 0 {
		fmt.Fprintln(w, "No labeled inputs found")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "LABEL\tVALUE")
		for _, f := range fields {
			fmt.Fprintf(tw, "%s\t%s\n", f.Label, f.Value)
		}
		tw.Flush()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to encode payload: %v", err)
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Payload: %s\n", body)
}

// DisplayResult prints the outcome of one submission. err may accompany a
// non-nil result when the server answered with an error status.
func DisplayResult(w io.Writer, res *submit.Result, err error) {
	if config.Global.Output == "json" {
		out := resultOutput{}
		if res != nil {
			out.RequestID = res.RequestID
			out.StatusCode = res.StatusCode
			out.Duration = res.Duration.String()
			out.Finished = res.Response.IsFinished
			out.Progress = res.Response.Progress
			if json.Valid(res.Response.Raw) {
				out.Response = res.Response.Raw
			}
		}
		if err != nil {
			out.Error = err.Error()
		}
		writeJSON(w, out)
		return
	}

	if res == nil {
		fmt.Fprintf(w, "%s %v\n", errorStyle.Render("FAILED"), err)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Status:\t%d\n", res.StatusCode)
	fmt.Fprintf(tw, "Finished:\t%s\n", finishedLabel(res, err))
	if res.Response.Progress != nil {
		fmt.Fprintf(tw, "Progress:\t%.0f%%\n", *res.Response.Progress)
	}
	fmt.Fprintf(tw, "Took:\t%v\n", res.Duration)
	if config.Global.Verbose {
		fmt.Fprintf(tw, "Request ID:\t%s\n", res.RequestID)
		if keys := responseKeys(res.Response); len(keys) > 0 {
			fmt.Fprintf(tw, "Reply fields:\t%s\n", strings.Join(keys, ", "))
		}
	}
	tw.Flush()

	if len(res.Response.Raw) > 0 && (res.Response.IsFinished || config.Global.Verbose || err != nil) {
		fmt.Fprintln(w)
		fmt.Fprintln(w, string(res.Response.Raw))
	}
}

func finishedLabel(res *submit.Result, err error) string {
	switch {
	case err != nil:
		return errorStyle.Render("error")
	case res.Response.IsFinished:
		return finishedStyle.Render("yes")
	default:
		return pendingStyle.Render("no")
	}
}

// responseKeys lists the reply's top-level keys other than the status ones
func responseKeys(resp form.Response) []string {
	keys := make([]string, 0, len(resp.Fields))
	for k := range resp.Fields {
		if k == "IsFinished" || k == "Progress" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
