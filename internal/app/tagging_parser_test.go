package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/journiq/journiq-server/internal/domain"
)

func TestParseTaggingResponse(t *testing.T) {
	proPolicy := domain.PolicyFor(domain.TierPro)
	plusPolicy := domain.PolicyFor(domain.TierPlus)

	tests := []struct {
		name         string
		text         string
		policy       domain.TaggingPolicy
		wantTitle    string
		wantCategory string
		wantTags     []string
	}{
		{
			name:         "well-formed labeled lines",
			text:         "Title: Marathon Day\nCategory: Health\nTags: running, fitness",
			policy:       proPolicy,
			wantTitle:    "Marathon Day",
			wantCategory: "Health",
			wantTags:     []string{"running", "fitness"},
		},
		{
			name:         "case-insensitive labels",
			text:         "TITLE: Shouty\nCATEGORY: personal\ntags: a, b",
			policy:       proPolicy,
			wantTitle:    "Shouty",
			wantCategory: "personal",
			wantTags:     []string{"a", "b"},
		},
		{
			name:         "list markers and markdown stripped",
			text:         "- **Title:** Clean Me\n* Category: Reflection\n• Tags: calm",
			policy:       proPolicy,
			wantTitle:    "Clean Me",
			wantCategory: "Reflection",
			wantTags:     []string{"calm"},
		},
		{
			name:         "first occurrence of each label wins",
			text:         "Category: First\nCategory: Second\nTags: one\nTags: two",
			policy:       plusPolicy,
			wantTitle:    domain.DefaultTitle,
			wantCategory: "First",
			wantTags:     []string{"one"},
		},
		{
			name:         "title ignored when policy does not generate titles",
			text:         "Title: Should Be Ignored\nCategory: Personal\nTags: x",
			policy:       plusPolicy,
			wantTitle:    domain.DefaultTitle,
			wantCategory: "Personal",
			wantTags:     []string{"x"},
		},
		{
			name:         "tags capped at five",
			text:         "Tags: a, b, c, d, e, f, g",
			policy:       plusPolicy,
			wantTitle:    domain.DefaultTitle,
			wantCategory: domain.DefaultCategory,
			wantTags:     []string{"a", "b", "c", "d", "e"},
		},
		{
			name:         "empty tags between commas dropped",
			text:         "Tags: a, , ,b,",
			policy:       plusPolicy,
			wantTitle:    domain.DefaultTitle,
			wantCategory: domain.DefaultCategory,
			wantTags:     []string{"a", "b"},
		},
		{
			name:         "quoted tags unwrapped",
			text:         `Tags: "running", "morning"`,
			policy:       plusPolicy,
			wantTitle:    domain.DefaultTitle,
			wantCategory: domain.DefaultCategory,
			wantTags:     []string{"running", "morning"},
		},
		{
			name:         "prose starting with a label word does not match",
			text:         "Titles matter a lot\nCategories are hard",
			policy:       proPolicy,
			wantTitle:    domain.DefaultTitle,
			wantCategory: domain.DefaultCategory,
			wantTags:     []string{},
		},
		{
			name:         "completely unusable output yields defaults",
			text:         "I'm sorry, I can't help with that.",
			policy:       proPolicy,
			wantTitle:    domain.DefaultTitle,
			wantCategory: domain.DefaultCategory,
			wantTags:     []string{},
		},
		{
			name:         "empty input yields defaults",
			text:         "",
			policy:       proPolicy,
			wantTitle:    domain.DefaultTitle,
			wantCategory: domain.DefaultCategory,
			wantTags:     []string{},
		},
		{
			name:         "label with empty value keeps default",
			text:         "Category:\nTags: a",
			policy:       plusPolicy,
			wantTitle:    domain.DefaultTitle,
			wantCategory: domain.DefaultCategory,
			wantTags:     []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseTaggingResponse(tt.text, tt.policy)

			assert.Equal(t, tt.wantTitle, result.Title)
			assert.Equal(t, tt.wantCategory, result.Category)
			assert.Equal(t, tt.wantTags, result.Tags)
		})
	}
}

func TestParseGoalBatch(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []string
		wantErr bool
	}{
		{
			name: "plain json array",
			text: `[{"content": "Run twice a week"}, {"content": "Read one book a month"}]`,
			want: []string{"Run twice a week", "Read one book a month"},
		},
		{
			name: "fenced json array",
			text: "```json\n[{\"content\": \"Meditate daily\"}]\n```",
			want: []string{"Meditate daily"},
		},
		{
			name: "fence without language tag",
			text: "```\n[{\"content\": \"Sleep earlier\"}]\n```",
			want: []string{"Sleep earlier"},
		},
		{
			name: "whitespace-only contents dropped",
			text: `[{"content": "  "}, {"content": "Keep this"}]`,
			want: []string{"Keep this"},
		},
		{
			name:    "prose is rejected",
			text:    "Here are your goals: run more, sleep more.",
			wantErr: true,
		},
		{
			name:    "json object instead of array is rejected",
			text:    `{"content": "not an array"}`,
			wantErr: true,
		},
		{
			name:    "empty array is rejected",
			text:    `[]`,
			wantErr: true,
		},
		{
			name:    "array of empty records is rejected",
			text:    `[{"content": ""}]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseGoalBatch(tt.text)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, domain.IsMalformedCompletion(err))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
