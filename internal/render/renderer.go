package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"job-portal/internal/domain/company"
	"job-portal/internal/domain/invitation"
	"job-portal/internal/domain/jobseeker"
)

// SkillPreviewLimit is how many skills a candidate card shows before collapsing the rest.
const SkillPreviewLimit = 5

// Renderer produces the HTML fragments of the portal views. All values go
// through html/template escaping.
type Renderer interface {
	CandidateGrid(candidates []jobseeker.Profile) (string, error)
	InvitationList(invitations []invitation.Invitation) (string, error)
	ProfileDetail(p jobseeker.Profile) (string, error)
	JobSeekerDashboard(p jobseeker.Profile, invitations []invitation.Invitation) (string, error)
	CompanyDashboard(c company.Company, candidates []jobseeker.Profile) (string, error)
}

type HTMLRenderer struct {
	tpl *template.Template
}

func NewRenderer() *HTMLRenderer {
	funcs := template.FuncMap{
		"formatDate":    formatDate,
		"previewSkills": previewSkills,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("portal").Funcs(funcs).Parse(fragmentTemplates)),
	}
}

func (r *HTMLRenderer) CandidateGrid(candidates []jobseeker.Profile) (string, error) {
	return r.execute("candidateGrid", candidates)
}

func (r *HTMLRenderer) InvitationList(invitations []invitation.Invitation) (string, error) {
	return r.execute("invitationList", invitations)
}

func (r *HTMLRenderer) ProfileDetail(p jobseeker.Profile) (string, error) {
	return r.execute("profileDetail", p)
}

func (r *HTMLRenderer) JobSeekerDashboard(p jobseeker.Profile, invitations []invitation.Invitation) (string, error) {
	return r.execute("jobSeekerDashboard", struct {
		Profile     jobseeker.Profile
		Invitations []invitation.Invitation
	}{p, invitations})
}

func (r *HTMLRenderer) CompanyDashboard(c company.Company, candidates []jobseeker.Profile) (string, error) {
	return r.execute("companyDashboard", struct {
		Company    company.Company
		Candidates []jobseeker.Profile
	}{c, candidates})
}

func (r *HTMLRenderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

type skillPreview struct {
	Shown []string
	More  int
}

func previewSkills(skills []string) skillPreview {
	if len(skills) <= SkillPreviewLimit {
		return skillPreview{Shown: skills}
	}
	return skillPreview{Shown: skills[:SkillPreviewLimit], More: len(skills) - SkillPreviewLimit}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("Jan 2, 2006")
}
