package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rolematch/internal/importer"
	"rolematch/internal/models"
	"rolematch/internal/validation"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	importTags   models.ContextTags
	importDryRun bool
)

//nolint:gochecknoglobals // Cobra boilerplate
var importCmd = &cobra.Command{
	Use:   "import file.csv",
	Short: "Standardize a CSV table and learn from confident matches",
	Long: `Maps the header row onto canonical fields, resolves every job title and prints
the import report as JSON. Rows at or above AUTO_APPLY_THRESHOLD are confirmed
into the mapping library with the given context tags unless --dry-run is set.
Without DATABASE_URL only --dry-run is allowed.

Example:
  rolematch import staff.csv --industry Fintech --region EU`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importTags.Industry, "industry", "", "Industry tag for confirmed mappings")
	importCmd.Flags().StringVar(&importTags.Region, "region", "", "Region tag for confirmed mappings")
	importCmd.Flags().StringVar(&importTags.CompanySize, "company-size", "", "Company size tag for confirmed mappings")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Report only; do not write to the mapping library")
}

// discard drops confirmations.
type discard struct{}

func (discard) ConfirmMapping(string, string, *models.SeniorityLevel, *string, models.ContextTags) {}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if valid, msg := validation.ValidateTags(importTags); !valid {
		return fmt.Errorf("invalid tags: %s", msg)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	load := loadWritableApp
	if importDryRun {
		load = loadApp
	}
	svc, err := load(ctx)
	if err != nil {
		if errors.Is(err, errNoDatabase) {
			return fmt.Errorf("%w (use --dry-run to preview without learning)", err)
		}
		return err
	}
	defer svc.Close()

	im := svc.Importer
	if importDryRun {
		im = importer.New(svc.Mapper, svc.Matcher, discard{}, svc.Synonyms, svc.Config.AutoApplyThreshold)
	}

	report, err := im.Import(ctx, f, importer.Options{Tags: importTags})
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), report)
}
