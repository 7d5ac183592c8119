package pipeline

import "jobfinder/internal/model"

type identity struct {
	url, company, title string
}

// Dedupe collapses postings that refer to the same listing, keeping the
// first occurrence and preserving input order. Identity is the exact
// (URL, Company, Title) triple: no trimming, case folding or URL
// normalization is applied, so the same job reposted with a different
// query string survives as a distinct listing. That strictness is
// accepted behavior.
func Dedupe(postings []model.Posting) []model.Posting {
	seen := make(map[identity]bool, len(postings))
	unique := make([]model.Posting, 0, len(postings))
	for _, p := range postings {
		id := identity{p.URL, p.Company, p.Title}
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, p)
	}
	return unique
}
