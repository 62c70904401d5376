package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rolematch/internal/importer"
	"rolematch/internal/models"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMatchCommand_JSON(t *testing.T) {
	out, err := run(t, "match", "--json", "SDR", "Qxz Wrangler")
	if err != nil {
		t.Fatalf("match error = %v", err)
	}

	var results []models.MatchResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].MatchType != models.MatchTaxonomy || results[0].Confidence != 80 {
		t.Errorf("SDR = %+v, want taxonomy 80", results[0])
	}
	if results[1].MatchType != models.MatchNone || results[1].StandardizedTitle != "Qxz Wrangler" {
		t.Errorf("Qxz Wrangler = %+v, want pass-through", results[1])
	}
}

func TestHeadersCommand(t *testing.T) {
	out, err := run(t, "headers", "Vorname", "Lieblingsessen")
	if err != nil {
		t.Fatalf("headers error = %v", err)
	}
	if !strings.Contains(out, "first_name") {
		t.Errorf("output missing first_name:\n%s", out)
	}
	if !strings.Contains(out, "Lieblingsessen") {
		t.Errorf("output missing unmapped header:\n%s", out)
	}
}

func TestImportCommand_DryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staff.csv")
	if err := os.WriteFile(path, []byte("Name;Job Title\nAda;SDR\nBob;CTO\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "import", path, "--dry-run", "--region", "EU")
	if err != nil {
		t.Fatalf("import error = %v", err)
	}

	var report importer.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(report.Rows) != 2 || report.NeedsReview != 2 || report.AutoConfirmed != 0 {
		t.Errorf("report = %d rows, %d review, %d confirmed", len(report.Rows), report.NeedsReview, report.AutoConfirmed)
	}
}

func TestConfirmCommand_RejectsUnknownSeniority(t *testing.T) {
	if _, err := run(t, "confirm", "Sr Dev", "Software Engineer", "--seniority", "Emperor"); err == nil {
		t.Error("confirm error = nil, want unknown seniority error")
	}
}

func TestWriteCommands_RequireDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staff.csv")
	if err := os.WriteFile(path, []byte("Name,Job Title\nAda,CTO\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"confirm", []string{"confirm", "Sr Dev", "Software Engineer"}},
		{"verify", []string{"verify", "Sr Dev"}},
		{"report", []string{"report", "Sr Dev"}},
		{"import", []string{"import", path, "--dry-run=false"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if !errors.Is(err, errNoDatabase) {
				t.Errorf("error = %v, want errNoDatabase", err)
			}
			if strings.Contains(out, tt.name+": ") {
				t.Errorf("output = %q, want no success line", out)
			}
		})
	}
}
