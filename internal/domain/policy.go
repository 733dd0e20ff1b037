package domain

import "strings"

// Defaults applied whenever the tagging pipeline cannot or must not
// produce a value. Shared by every generator; do not duplicate these
// at call sites.
const (
	// DefaultTitle is used when no title is generated or supplied.
	DefaultTitle = "Untitled Entry"

	// DefaultCategory is the fallback category, and the coercion target
	// for out-of-taxonomy model output on the plus tier.
	DefaultCategory = "Other"

	// MaxTags caps the number of tags on an entry.
	MaxTags = 5
)

// Categories is the fixed taxonomy entries are classified into.
// Plus-tier categorization is constrained to this list; pro-tier
// output may leave it.
var Categories = []string{
	"Personal",
	"Business",
	"Goals",
	"Reflection",
	"Ideas",
	"Learning",
	DefaultCategory,
}

// InTaxonomy reports whether category is a member of the fixed
// taxonomy. Matching is case-insensitive; the canonical spelling is
// the one in Categories.
func InTaxonomy(category string) bool {
	for _, c := range Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}

	return false
}

// CanonicalCategory returns the canonical spelling for a category that
// is in the taxonomy, or the input unchanged otherwise.
func CanonicalCategory(category string) string {
	for _, c := range Categories {
		if strings.EqualFold(c, category) {
			return c
		}
	}

	return category
}

// TaggingPolicy describes what the entry tagger does for one tier.
type TaggingPolicy struct {
	// CallsModel is false when the tier gets deterministic output with
	// no completion call at all.
	CallsModel bool

	// GeneratesTitle is true when the model is asked for a title.
	GeneratesTitle bool

	// ConstrainsCategory forces out-of-taxonomy categories to
	// DefaultCategory.
	ConstrainsCategory bool
}

// PolicyFor returns the tagging policy for a tier. The switch is
// exhaustive over the Tier enum; a new tier will not compile past the
// linter without a row here.
func PolicyFor(tier Tier) TaggingPolicy {
	switch tier {
	case TierBasic:
		return TaggingPolicy{}
	case TierPlus:
		return TaggingPolicy{CallsModel: true, ConstrainsCategory: true}
	case TierPro:
		return TaggingPolicy{CallsModel: true, GeneratesTitle: true}
	default:
		// Unknown tiers get the cheapest, safest treatment.
		return TaggingPolicy{}
	}
}

// BasicTaggingResult is the fixed output for tiers that skip the model.
func BasicTaggingResult() *TaggingResult {
	return &TaggingResult{
		Title:    DefaultTitle,
		Category: DefaultCategory,
		Tags:     []string{},
	}
}
