package search

import (
	"strings"

	"job-portal/internal/domain/jobseeker"
)

// Criteria holds the three candidate filters. Empty fields match everything.
type Criteria struct {
	Search     string
	Experience jobseeker.Experience
	JobType    jobseeker.JobType
}

func (c Criteria) IsEmpty() bool {
	return c.Search == "" && c.Experience == "" && c.JobType == ""
}

// FilterCandidates returns the candidates matching all of c, in input order.
// The result never aliases all.
func FilterCandidates(all []jobseeker.Profile, c Criteria) []jobseeker.Profile {
	term := strings.ToLower(c.Search)

	out := make([]jobseeker.Profile, 0, len(all))
	for _, p := range all {
		if !matchesSearch(p, term) {
			continue
		}
		if c.Experience != "" && p.Experience != c.Experience {
			continue
		}
		if !matchesJobType(p, c.JobType) {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}

func matchesSearch(p jobseeker.Profile, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.FullName), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Location), term) {
		return true
	}
	for _, s := range p.Skills {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

func matchesJobType(p jobseeker.Profile, want jobseeker.JobType) bool {
	if want == "" {
		return true
	}
	return p.JobType == want || p.JobType == jobseeker.JobTypeAny
}
