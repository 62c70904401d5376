// Package importer standardizes uploaded compensation tables: it maps the
// header row onto canonical fields, resolves every job title and feeds
// confident matches back into the mapping library.
package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"rolematch/internal/headers"
	"rolematch/internal/models"
)

// DefaultAutoApplyThreshold is the confidence at or above which a row's match
// is confirmed without review.
const DefaultAutoApplyThreshold = 85

// DefaultMaxRows bounds a single import.
const DefaultMaxRows = 50000

var (
	ErrEmptyFile     = errors.New("import file has no header row")
	ErrNoTitleColumn = errors.New("no column maps to job_title")
	ErrTooManyRows   = errors.New("import exceeds row limit")
)

// TitleMatcher resolves titles in input order.
type TitleMatcher interface {
	MatchAll(ctx context.Context, titles []string) []models.MatchResult
}

// Confirmer records a confirmed mapping. Calls must not block on storage.
type Confirmer interface {
	ConfirmMapping(originalTitle, standardizedTitle string, seniority *models.SeniorityLevel, roleFamily *string, tags models.ContextTags)
}

// Options tune one import.
type Options struct {
	Tags          models.ContextTags    // Recorded with every auto-confirmed mapping
	FieldSynonyms headers.FieldSynonyms // Merged over the importer's synonyms
	Comma         rune                  // Field delimiter; zero detects ',' or ';'
}

// Row is one standardized data row.
type Row struct {
	Line   int                `json:"line"`
	Fields map[string]string  `json:"fields"`
	Extra  map[string]string  `json:"extra,omitempty"`
	Match  models.MatchResult `json:"match"`
	Review bool               `json:"needs_review"`
}

// Report summarizes an import.
type Report struct {
	HeaderMapping   map[string]string `json:"header_mapping"`
	UnmappedHeaders []string          `json:"unmapped_headers"`
	Rows            []Row             `json:"rows"`
	MatchTypes      map[string]int    `json:"match_types"`
	AutoConfirmed   int               `json:"auto_confirmed"`
	NeedsReview     int               `json:"needs_review"`
}

// Importer runs imports.
type Importer struct {
	mapper    *headers.Mapper
	matcher   TitleMatcher
	confirmer Confirmer
	synonyms  headers.FieldSynonyms
	threshold int
	maxRows   int
}

// New creates an Importer. A threshold of zero uses DefaultAutoApplyThreshold.
func New(mapper *headers.Mapper, matcher TitleMatcher, confirmer Confirmer, synonyms headers.FieldSynonyms, threshold int) *Importer {
	if threshold <= 0 {
		threshold = DefaultAutoApplyThreshold
	}
	return &Importer{
		mapper:    mapper,
		matcher:   matcher,
		confirmer: confirmer,
		synonyms:  synonyms,
		threshold: threshold,
		maxRows:   DefaultMaxRows,
	}
}

// Import reads a CSV table from r and standardizes it.
func (im *Importer) Import(ctx context.Context, r io.Reader, opts Options) (*Report, error) {
	header, records, err := im.readCSV(r, opts.Comma)
	if err != nil {
		return nil, err
	}

	synonyms := im.synonyms
	if len(opts.FieldSynonyms) > 0 {
		synonyms = synonyms.Merge(opts.FieldSynonyms)
	}
	mapped := im.mapper.MapHeaders(header, synonyms)

	titleCol := -1
	fieldByCol := make([]string, len(header))
	for i, h := range header {
		field, ok := mapped.FieldFor(h)
		if !ok || slices.Index(header, h) != i {
			continue
		}
		fieldByCol[i] = field
		if field == headers.FieldJobTitle {
			titleCol = i
		}
	}
	if titleCol < 0 {
		return nil, ErrNoTitleColumn
	}

	titles := make([]string, len(records))
	for i, rec := range records {
		titles[i] = cell(rec, titleCol)
	}
	matches := im.matcher.MatchAll(ctx, titles)

	report := &Report{
		HeaderMapping:   mapped.Mapping(),
		UnmappedHeaders: mapped.Unmapped,
		Rows:            make([]Row, len(records)),
		MatchTypes:      make(map[string]int),
	}

	for i, rec := range records {
		row := Row{
			Line:   i + 2,
			Fields: make(map[string]string),
			Match:  matches[i],
		}
		for col, h := range header {
			if fieldByCol[col] != "" {
				row.Fields[fieldByCol[col]] = cell(rec, col)
				continue
			}
			if row.Extra == nil {
				row.Extra = make(map[string]string)
			}
			row.Extra[h] = cell(rec, col)
		}
		report.MatchTypes[row.Match.MatchType.String()]++

		if im.apply(row.Match, opts.Tags) {
			report.AutoConfirmed++
		} else if strings.TrimSpace(row.Match.OriginalTitle) != "" {
			row.Review = true
			report.NeedsReview++
		}
		report.Rows[i] = row
	}

	return report, nil
}

// apply confirms m if it is confident enough and reports whether it did.
func (im *Importer) apply(m models.MatchResult, tags models.ContextTags) bool {
	if !m.IsMatched() || m.Confidence < im.threshold {
		return false
	}
	im.confirmer.ConfirmMapping(m.OriginalTitle, m.StandardizedTitle, m.SeniorityLevel, m.RoleFamily, tags)
	return true
}

func (im *Importer) readCSV(r io.Reader, comma rune) ([]string, [][]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read import: %w", err)
	}
	b = bytes.TrimPrefix(b, []byte{0xEF, 0xBB, 0xBF})
	if comma == 0 {
		comma = detectDelimiter(b)
	}

	cr := csv.NewReader(bytes.NewReader(b))
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyFile
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse header row: %w", err)
	}

	var records [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse row: %w", err)
		}
		if len(records) == im.maxRows {
			return nil, nil, fmt.Errorf("%w (%d)", ErrTooManyRows, im.maxRows)
		}
		records = append(records, rec)
	}
	return header, records, nil
}

// detectDelimiter picks ';' when the first line has more semicolons than commas,
// as exported by spreadsheet tools in many European locales.
func detectDelimiter(b []byte) rune {
	line := b
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		line = b[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

func cell(rec []string, i int) string {
	if i < len(rec) {
		return strings.TrimSpace(rec[i])
	}
	return ""
}
