// Package similarity scores how alike two short strings are on a [0,1] scale.
package similarity

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Defaults for the maximum search distance.
const (
	DefaultMaxDistanceRatio = 0.5
	DefaultMinDistance      = 2
)

// Scorer computes a length-normalized edit-distance similarity. Pairs whose
// distance exceeds the maximum search distance score 0. The maximum grows with
// the longer input: max(MinDistance, ceil(longer * MaxDistanceRatio)).
type Scorer struct {
	MaxDistanceRatio float64
	MinDistance      int
}

// New creates a Scorer with the given distance ratio and the default minimum distance.
func New(maxDistanceRatio float64) *Scorer {
	if maxDistanceRatio <= 0 {
		maxDistanceRatio = DefaultMaxDistanceRatio
	}
	return &Scorer{MaxDistanceRatio: maxDistanceRatio, MinDistance: DefaultMinDistance}
}

// Default returns a Scorer using the default search distance.
func Default() *Scorer {
	return New(DefaultMaxDistanceRatio)
}

// Score returns 1 for strings equal after normalization, 0 when exactly one is
// empty or the edit distance is out of range, and 1 - d/longer otherwise.
func (s *Scorer) Score(a, b string) float64 {
	a, b = Normalize(a), Normalize(b)
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}

	longer := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	dist := levenshtein.ComputeDistance(a, b)
	if dist > s.maxDistance(longer) {
		return 0
	}
	return math.Max(0, 1-float64(dist)/float64(longer))
}

func (s *Scorer) maxDistance(longer int) int {
	d := int(math.Ceil(float64(longer) * s.MaxDistanceRatio))
	return max(d, s.MinDistance)
}

// Normalize folds accents, lowercases, collapses runs of whitespace and trims.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// transform.Chain keeps internal state, so one is built per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}
