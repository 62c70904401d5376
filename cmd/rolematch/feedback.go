package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rolematch/internal/models"
	"rolematch/internal/validation"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	confirmSeniority string
	confirmFamily    string
	confirmTags      models.ContextTags
)

//nolint:gochecknoglobals // Cobra boilerplate
var confirmCmd = &cobra.Command{
	Use:   "confirm original-title standardized-title",
	Short: "Record a confirmed title mapping",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfirm,
}

//nolint:gochecknoglobals // Cobra boilerplate
var verifyCmd = &cobra.Command{
	Use:   "verify original-title",
	Short: "Re-affirm an existing mapping",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMark(cmd, args[0], models.FeedbackVerify)
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var reportCmd = &cobra.Command{
	Use:   "report original-title",
	Short: "Flag an existing mapping as wrong",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMark(cmd, args[0], models.FeedbackReport)
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(confirmCmd, verifyCmd, reportCmd)
	confirmCmd.Flags().StringVar(&confirmSeniority, "seniority", "", "Seniority level")
	confirmCmd.Flags().StringVar(&confirmFamily, "family", "", "Role family")
	confirmCmd.Flags().StringVar(&confirmTags.Industry, "industry", "", "Industry tag")
	confirmCmd.Flags().StringVar(&confirmTags.Region, "region", "", "Region tag")
	confirmCmd.Flags().StringVar(&confirmTags.CompanySize, "company-size", "", "Company size tag")
}

func runConfirm(cmd *cobra.Command, args []string) error {
	for _, t := range args {
		if valid, msg := validation.ValidateRequiredTitle(t); !valid {
			return fmt.Errorf("invalid title %q: %s", t, msg)
		}
	}
	seniority, err := models.SeniorityPtr(confirmSeniority)
	if err != nil {
		return err
	}
	if valid, msg := validation.ValidateTags(confirmTags); !valid {
		return fmt.Errorf("invalid tags: %s", msg)
	}
	var family *string
	if f := strings.TrimSpace(confirmFamily); f != "" {
		family = &f
	}

	svc, err := loadWritableApp(cmd.Context())
	if err != nil {
		return err
	}
	// Close waits for the write to land.
	defer svc.Close()

	svc.Feedback.ConfirmMapping(args[0], strings.TrimSpace(args[1]), seniority, family, confirmTags)
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s\n", models.FeedbackConfirm, args[0], args[1])
	return nil
}

func runMark(cmd *cobra.Command, title, action string) error {
	if valid, msg := validation.ValidateRequiredTitle(title); !valid {
		return fmt.Errorf("invalid title: %s", msg)
	}

	svc, err := loadWritableApp(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Close()

	if action == models.FeedbackVerify {
		svc.Feedback.MarkVerified(title)
	} else {
		svc.Feedback.MarkReported(title)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", action, title)
	return nil
}
