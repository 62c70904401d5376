package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rolematch/internal/validation"
)

//nolint:gochecknoglobals // Cobra boilerplate
var headersCmd = &cobra.Command{
	Use:   "headers header [header...]",
	Short: "Map spreadsheet headers to canonical fields",
	Long: `Assigns each header to at most one canonical field using the built-in
multilingual synonyms plus any field_synonyms from the config file.

Example:
  rolematch headers Vorname Nachname E-Mail Stellenbezeichnung`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHeaders,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(headersCmd)
}

func runHeaders(cmd *cobra.Command, args []string) error {
	if valid, msg := validation.ValidateHeaders(args); !valid {
		return fmt.Errorf("invalid headers: %s", msg)
	}

	svc, err := loadApp(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Close()

	result := svc.Mapper.MapHeaders(args, svc.Synonyms)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "HEADER\tFIELD\tSYNONYM\tSCORE")
	for _, a := range result.Assignments {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\n", a.Header, a.Field, a.Synonym, a.Score)
	}
	for _, h := range result.Unmapped {
		fmt.Fprintf(tw, "%s\t-\t-\t-\n", h)
	}
	return tw.Flush()
}
