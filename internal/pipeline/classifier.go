package pipeline

import (
	"regexp"
	"strings"

	"jobfinder/internal/model"
)

// Options holds the keyword and location lists the classifier is built
// from. The lists come from configuration, not package-level state, so
// several classifiers with different vocabularies can coexist.
type Options struct {
	LevelMarkers      []string
	TechnicalKeywords []string
	GermanLocations   []string
}

// Classification is the classifier's verdict on a single posting.
type Classification struct {
	EntryLevel bool
	German     bool
	Keywords   []string
}

// Relevant reports whether the posting survives filtering: entry-level,
// located in Germany, and at least one technical keyword matched.
func (c Classification) Relevant() bool {
	return c.EntryLevel && c.German && len(c.Keywords) > 0
}

// seniorMarkers flag roles that are explicitly not entry-level. They are
// only ever consulted after the positive marker scan found nothing, see
// isEntryLevel.
var seniorMarkers = []string{"senior", "lead", "principal", "architect", "manager"}

type keywordPattern struct {
	keyword string
	re      *regexp.Regexp
}

// Classifier decides whether a posting is entry-level, in Germany and
// technically relevant. All lists are case-folded and keyword patterns
// compiled once at construction.
type Classifier struct {
	levelMarkers []string
	keywords     []keywordPattern
	locations    []string
}

func NewClassifier(opts Options) *Classifier {
	c := &Classifier{}
	for _, m := range opts.LevelMarkers {
		c.levelMarkers = append(c.levelMarkers, strings.ToLower(m))
	}
	for _, kw := range opts.TechnicalKeywords {
		kw = strings.ToLower(kw)
		c.keywords = append(c.keywords, keywordPattern{
			keyword: kw,
			re:      regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`),
		})
	}
	for _, l := range opts.GermanLocations {
		c.locations = append(c.locations, strings.ToLower(l))
	}
	return c
}

func (c *Classifier) Classify(p model.Posting) Classification {
	text := p.FullText()
	return Classification{
		EntryLevel: c.isEntryLevel(text),
		German:     c.isGermanLocation(p.Location),
		Keywords:   c.matchKeywords(text),
	}
}

// isEntryLevel returns true as soon as any positive level marker appears
// in the text. A posting without any positive marker is treated as not
// entry-level, not as unknown. The senior-marker scan below therefore only
// runs when no positive marker matched, at which point the answer is
// already false either way; it stays in as documented behavior, not as an
// override.
func (c *Classifier) isEntryLevel(text string) bool {
	for _, marker := range c.levelMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	for _, marker := range seniorMarkers {
		if strings.Contains(text, marker) {
			return false
		}
	}
	return false
}

func (c *Classifier) isGermanLocation(location string) bool {
	loc := strings.ToLower(location)
	for _, name := range c.locations {
		if strings.Contains(loc, name) {
			return true
		}
	}
	return false
}

// matchKeywords collects whole-token keyword matches from the text.
// Duplicates are dropped; order follows the configured keyword list.
// Ranking re-imposes its own order by score later.
func (c *Classifier) matchKeywords(text string) []string {
	seen := make(map[string]bool, len(c.keywords))
	var matches []string
	for _, kp := range c.keywords {
		if seen[kp.keyword] {
			continue
		}
		if kp.re.MatchString(text) {
			seen[kp.keyword] = true
			matches = append(matches, kp.keyword)
		}
	}
	return matches
}
