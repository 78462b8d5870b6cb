package jobseeker

import (
	"strings"
	"time"
)

type Experience string

const (
	ExperienceEntry  Experience = "Entry Level"
	ExperienceJunior Experience = "Junior"
	ExperienceMid    Experience = "Mid-Level"
	ExperienceSenior Experience = "Senior"
	ExperienceLead   Experience = "Lead"
)

type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeFreelance  JobType = "Freelance"
	JobTypeInternship JobType = "Internship"

	// JobTypeAny marks a candidate open to every job type; it satisfies any job type filter.
	JobTypeAny JobType = "Any"
)

type Profile struct {
	ID             string     `json:"id"`
	FullName       string     `json:"fullName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Location       string     `json:"location"`
	Skills         []string   `json:"skills"`
	Experience     Experience `json:"experience"`
	JobType        JobType    `json:"jobType"`
	About          string     `json:"about"`
	RegisteredDate time.Time  `json:"registeredDate"`
}

// Clone returns a copy that shares no memory with p.
func (p Profile) Clone() Profile {
	out := p
	if p.Skills != nil {
		out.Skills = make([]string, len(p.Skills))
		copy(out.Skills, p.Skills)
	}
	return out
}

// ParseSkills splits a comma separated list, trimming entries and dropping empty ones.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func JoinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}

// SameEmail compares two addresses ignoring case and surrounding whitespace.
func SameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
