package portal

import (
	"testing"

	"job-portal/internal/domain/company"
	"job-portal/internal/domain/jobseeker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateClone_IsDeep(t *testing.T) {
	u := jobseeker.Profile{ID: "1", Email: "a@x.com", Skills: []string{"Go"}}
	c := company.Directory[0]
	s := State{
		JobSeekers:     []jobseeker.Profile{u},
		CurrentUser:    &u,
		CurrentCompany: &c,
	}

	cp := s.Clone()
	cp.JobSeekers[0].Skills[0] = "Rust"
	cp.CurrentUser.FullName = "changed"
	cp.CurrentCompany.Name = "changed"

	assert.Equal(t, "Go", s.JobSeekers[0].Skills[0])
	assert.Equal(t, "", s.CurrentUser.FullName)
	assert.Equal(t, company.Directory[0].Name, s.CurrentCompany.Name)
}

func TestStateLookups(t *testing.T) {
	s := Empty()
	s.JobSeekers = append(s.JobSeekers,
		jobseeker.Profile{ID: "1", Email: "a@x.com"},
		jobseeker.Profile{ID: "2", Email: "b@x.com"},
	)

	p, ok := s.JobSeekerByEmail("B@X.COM")
	require.True(t, ok)
	assert.Equal(t, "2", p.ID)

	_, ok = s.JobSeekerByID("3")
	assert.False(t, ok)
	assert.Equal(t, 1, s.JobSeekerIndex("2"))
}
