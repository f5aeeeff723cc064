// Package detect scores uploaded datasets against the domain catalog.
package detect

import (
	"fmt"
	"strings"

	"github.com/vantagics/bizlens/pkg/catalog"
	"github.com/vantagics/bizlens/pkg/models/domain"
)

const (
	// DefaultThreshold is the minimum winning score; anything below falls
	// back to the general profile.
	DefaultThreshold = 0.15

	fragmentBonus    = 0.05
	fragmentBonusCap = 0.15
)

// Detector is a pure function of its inputs and the static catalog; one
// instance serves every concurrent run.
type Detector struct {
	catalog   *catalog.Catalog
	threshold float64
}

func NewDetector(c *catalog.Catalog) *Detector {
	return &Detector{catalog: c, threshold: DefaultThreshold}
}

// WithThreshold overrides the minimum-confidence threshold.
func (d *Detector) WithThreshold(t float64) *Detector {
	d.threshold = t
	return d
}

// DetectDomain scores every catalog profile against the dataset's column
// names plus the free-text description and returns the best match. Ties keep
// the earlier profile in catalog declaration order. It never fails: when no
// profile clears the threshold the general profile is returned with the raw
// best score as confidence.
func (d *Detector) DetectDomain(ds *domain.Dataset, description string) domain.DetectionResult {
	haystack := buildHaystack(ds, description)

	var best *domain.DomainProfile
	var bestScore float64
	var bestMatched []string

	for _, profile := range d.catalog.Profiles() {
		if profile.ID == catalog.DomainGeneral {
			continue
		}
		score, matched := scoreProfile(profile, haystack)
		if best == nil || score > bestScore {
			best, bestScore, bestMatched = profile, score, matched
		}
	}

	if best == nil || bestScore < d.threshold {
		general := d.catalog.GeneralProfile()
		return domain.DetectionResult{
			DomainID:        general.ID,
			DomainName:      general.Name,
			Confidence:      clamp01(bestScore),
			MatchedKeywords: bestMatched,
			ExpertRole:      general.ExpertRole,
			Reasoning:       fmt.Sprintf(general.ReasoningTemplate, strings.Join(bestMatched, ", ")),
		}
	}

	return domain.DetectionResult{
		DomainID:        best.ID,
		DomainName:      best.Name,
		Confidence:      clamp01(bestScore),
		MatchedKeywords: bestMatched,
		ExpertRole:      best.ExpertRole,
		Reasoning:       fmt.Sprintf(best.ReasoningTemplate, strings.Join(bestMatched, ", ")),
	}
}

// scoreProfile computes matched-keywords / total-keywords plus a small bonus
// for each expected column fragment found, capped so fragments can tip a tie
// but never outweigh the keyword signal.
func scoreProfile(p *domain.DomainProfile, haystack string) (float64, []string) {
	if len(p.Keywords) == 0 {
		return 0, nil
	}

	var matched []string
	for _, kw := range p.Keywords {
		if strings.Contains(haystack, normalize(kw)) {
			matched = append(matched, kw)
		}
	}
	score := float64(len(matched)) / float64(len(p.Keywords))

	var bonus float64
	for _, frag := range p.ColumnFragments {
		if strings.Contains(haystack, normalize(frag)) {
			bonus += fragmentBonus
		}
	}
	if bonus > fragmentBonusCap {
		bonus = fragmentBonusCap
	}
	return score + bonus, matched
}

// buildHaystack lower-cases and concatenates column names and the description.
// Underscores and spaces are normalized so "don_hang" matches "don hang".
func buildHaystack(ds *domain.Dataset, description string) string {
	parts := make([]string, 0, len(ds.Columns)+1)
	for _, c := range ds.Columns {
		parts = append(parts, c.Name)
	}
	parts = append(parts, description)
	return normalize(strings.Join(parts, " "))
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", " ")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
