package app

import (
	"strings"

	"github.com/journiq/journiq-server/internal/domain"
)

// ParseTaggingResponse extracts a tagging result from free-text model
// output. The model is asked for labeled lines (Title:, Category:,
// Tags:) but does not reliably produce them, so parsing is forgiving:
// labels match case-insensitively, list markers and markdown emphasis
// are stripped, and any missing section falls back to its default.
//
// The function is pure and never fails; a completely unusable response
// yields the same result as the basic tier. The first occurrence of
// each label wins.
func ParseTaggingResponse(text string, policy domain.TaggingPolicy) *domain.TaggingResult {
	result := &domain.TaggingResult{
		Title:    domain.DefaultTitle,
		Category: domain.DefaultCategory,
		Tags:     []string{},
	}

	var (
		titleSet    bool
		categorySet bool
		tagsSet     bool
	)

	for line := range strings.Lines(text) {
		line = strings.TrimLeft(strings.TrimSpace(line), "-*#• ")

		if policy.GeneratesTitle && !titleSet {
			if value, ok := labeledValue(line, "title"); ok {
				result.Title = value
				titleSet = true

				continue
			}
		}

		if !categorySet {
			if value, ok := labeledValue(line, "category"); ok {
				result.Category = value
				categorySet = true

				continue
			}
		}

		if !tagsSet {
			if value, ok := labeledValue(line, "tags"); ok {
				result.Tags = splitTags(value)
				tagsSet = true
			}
		}
	}

	return result
}

// labeledValue matches a "Label: value" line case-insensitively. The
// label must be followed by a colon or whitespace so that a line like
// "Titles matter" does not match "title".
func labeledValue(line, label string) (string, bool) {
	if len(line) <= len(label) {
		return "", false
	}

	if !strings.EqualFold(line[:len(label)], label) {
		return "", false
	}

	rest := line[len(label):]
	if rest[0] != ':' && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}

	value := strings.Trim(strings.TrimPrefix(strings.TrimSpace(rest), ":"), "* \t")
	if value == "" {
		return "", false
	}

	return value, true
}

// splitTags splits a comma-separated tag list, trims each tag, drops
// empties, and caps the result at domain.MaxTags.
func splitTags(value string) []string {
	parts := strings.Split(value, ",")
	tags := make([]string, 0, len(parts))

	for _, part := range parts {
		tag := strings.Trim(strings.TrimSpace(part), "\"")
		if tag == "" {
			continue
		}

		tags = append(tags, tag)
		if len(tags) == domain.MaxTags {
			break
		}
	}

	return tags
}
