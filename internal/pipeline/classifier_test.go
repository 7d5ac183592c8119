package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobfinder/internal/model"
)

func testClassifier() *Classifier {
	return NewClassifier(Options{
		LevelMarkers:      []string{"junior", "entry level", "graduate", "einstieg"},
		TechnicalKeywords: []string{"ai", "machine learning", "ml", "python", "data science"},
		GermanLocations:   []string{"Berlin", "Bayern", "Hamburg", "Germany", "Deutschland", "DE"},
	})
}

func TestClassifyEntryLevel(t *testing.T) {
	c := testClassifier()

	tests := []struct {
		name    string
		posting model.Posting
		want    bool
	}{
		{
			name:    "junior in title",
			posting: model.Posting{Title: "Junior AI Engineer"},
			want:    true,
		},
		{
			name:    "marker only in description",
			posting: model.Posting{Title: "AI Engineer", Description: "Great entry level position"},
			want:    true,
		},
		{
			// The positive scan returns on first hit, so "senior" never
			// gets a chance to override a positive marker.
			name:    "positive marker wins over senior",
			posting: model.Posting{Title: "Junior to Senior Developer"},
			want:    true,
		},
		{
			// No positive marker: the senior scan runs but the answer is
			// already false regardless.
			name:    "senior without positive marker",
			posting: model.Posting{Title: "Senior Data Scientist"},
			want:    false,
		},
		{
			name:    "no markers at all",
			posting: model.Posting{Title: "Data Scientist"},
			want:    false,
		},
		{
			name:    "german marker",
			posting: model.Posting{Title: "Softwareentwickler Einstieg"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.posting).EntryLevel)
		})
	}
}

func TestClassifyGermanLocation(t *testing.T) {
	c := testClassifier()

	tests := []struct {
		location string
		want     bool
	}{
		{"Berlin, Germany", true},
		{"münchen, bayern", true},
		{"Hamburg", true},
		{"Deutschland", true},
		{"Paris, France", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			got := c.Classify(model.Posting{Title: "Junior Dev", Location: tt.location})
			assert.Equal(t, tt.want, got.German)
		})
	}
}

func TestMatchKeywordsWholeToken(t *testing.T) {
	c := testClassifier()

	// "ml" must not match inside "html", "ai" not inside "maintain".
	got := c.Classify(model.Posting{
		Title:       "Junior HTML Developer",
		Description: "You will maintain our website",
	})
	assert.Empty(t, got.Keywords)

	got = c.Classify(model.Posting{
		Title:       "Junior ML Engineer",
		Description: "AI and machine learning with Python",
	})
	assert.Equal(t, []string{"ai", "machine learning", "ml", "python"}, got.Keywords)
}

func TestMatchKeywordsDeduplicated(t *testing.T) {
	c := testClassifier()

	got := c.Classify(model.Posting{
		Title:       "Junior Python Developer",
		Description: "Python, python and more Python",
	})
	assert.Equal(t, []string{"python"}, got.Keywords)
}

func TestClassificationRelevant(t *testing.T) {
	c := testClassifier()

	// Scenario: all three criteria must hold at once.
	relevant := c.Classify(model.Posting{
		Title:    "Junior AI Engineer",
		Location: "Berlin, Germany",
	})
	assert.True(t, relevant.Relevant())

	wrongCountry := c.Classify(model.Posting{
		Title:    "Junior AI Engineer",
		Location: "Paris, France",
	})
	assert.False(t, wrongCountry.Relevant())

	noKeyword := c.Classify(model.Posting{
		Title:    "Junior Accountant",
		Location: "Berlin, Germany",
	})
	assert.False(t, noKeyword.Relevant())
}
