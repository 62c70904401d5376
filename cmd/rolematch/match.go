package main

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var matchJSON bool

//nolint:gochecknoglobals // Cobra boilerplate
var matchCmd = &cobra.Command{
	Use:   "match [title...]",
	Short: "Resolve job titles to canonical roles",
	Long: `Resolves each title through the exact library, fuzzy library, taxonomy alias
and fuzzy taxonomy tiers. With no arguments, titles are read from stdin, one per line.

Examples:
  rolematch match "Sr. Dev" SDR
  cut -d, -f3 staff.csv | rolematch match --json`,
	RunE: runMatch,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print results as JSON")
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	titles := args
	if len(titles) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			titles = append(titles, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read titles: %w", err)
		}
	}

	svc, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	results := svc.Matcher.MatchAll(ctx, titles)
	if matchJSON {
		return writeJSON(cmd.OutOrStdout(), results)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORIGINAL\tSTANDARDIZED\tSENIORITY\tFAMILY\tCONFIDENCE\tMATCH")
	for _, r := range results {
		seniority, family := "-", "-"
		if r.SeniorityLevel != nil {
			seniority = string(*r.SeniorityLevel)
		}
		if r.RoleFamily != nil {
			family = *r.RoleFamily
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			strings.TrimSpace(r.OriginalTitle), r.StandardizedTitle, seniority, family, r.Confidence, r.MatchType)
	}
	return tw.Flush()
}
