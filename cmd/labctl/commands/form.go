package commands

import (
	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Show the labeled inputs of a lab page",
	Long: `Read a lab page and list every input wrapped by a label, together with
the JSON payload a submission would send.`,
	Example: `  # Lab 5 as served by labd
  labctl fields

  # A saved copy of the page
  labctl fields --file=lab5.html`,
	Args: cobra.NoArgs,
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a lab page's form",
	Long: `Read a lab page, build the payload from its labeled inputs and POST it to
/labs?lab_id=N. Values given with --set are added after the page's fields
and replace fields with the same label.`,
	Example: `  # Submit lab 5 as served by labd
  labctl submit

  # Override a value and fire asynchronously
  labctl submit --set K=200 --async

  # Submit only explicit values
  labctl submit --no-page --set x=3 --set "y=ihsan's typo"`,
	Args: cobra.NoArgs,
}

var solveCmd = &cobra.Command{
	Use:     "solve",
	Short:   "Submit grid parameters without reading a page",
	Example: `  labctl solve --n=10 --k=100 --t=1`,
	Args:    cobra.NoArgs,
}

// GetFormCommands returns the form command references
func GetFormCommands() (*cobra.Command, *cobra.Command, *cobra.Command) {
	return fieldsCmd, submitCmd, solveCmd
}

// SetupFormFlags configures the page source flags and per-command flags
func SetupFormFlags(fields, submit, solve *cobra.Command,
	pageURLPtr, pageFilePtr *string, labIDPtr *int, setPtr *[]string, asyncPtr, noPagePtr *bool,
	nPtr, kPtr, tPtr *string, defaultLabID int) {
	for _, cmd := range []*cobra.Command{fields, submit, solve} {
		cmd.Flags().IntVar(labIDPtr, "lab-id", defaultLabID, "Lab to read and submit to")
	}
	for _, cmd := range []*cobra.Command{fields, submit} {
		cmd.Flags().StringVar(pageURLPtr, "page", "", "Read the form from this URL (default: the lab's page on labd)")
		cmd.Flags().StringVar(pageFilePtr, "file", "", "Read the form from a saved HTML page")
		cmd.MarkFlagsMutuallyExclusive("page", "file")
	}

	submit.Flags().StringArrayVar(setPtr, "set", nil, "Add a field as key=value (repeatable, later wins)")
	submit.Flags().BoolVar(noPagePtr, "no-page", false, "Do not read a page, send only the --set fields")
	submit.MarkFlagsMutuallyExclusive("no-page", "page")
	submit.MarkFlagsMutuallyExclusive("no-page", "file")
	for _, cmd := range []*cobra.Command{submit, solve} {
		cmd.Flags().BoolVar(asyncPtr, "async", false, "Fire the request and wait for its callback")
	}

	solve.Flags().StringVar(nPtr, "n", "", "Number of space steps (N)")
	solve.Flags().StringVar(kPtr, "k", "", "Number of time steps (K)")
	solve.Flags().StringVar(tPtr, "t", "", "Time horizon (T)")
	solve.MarkFlagRequired("n")
	solve.MarkFlagRequired("k")
	solve.MarkFlagRequired("t")
}
