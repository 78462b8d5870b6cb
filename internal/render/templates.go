package render

const fragmentTemplates = `
{{define "skills"}}{{range .Shown}}<span class="skill-tag">{{.}}</span>{{end}}{{if gt .More 0}}<span class="skill-tag more">+{{.More}} more</span>{{end}}{{end}}

{{define "candidateCard"}}<div class="candidate-card" data-candidate-id="{{.ID}}">
  <div class="candidate-header">
    <h3>{{.FullName}}</h3>
    <span class="candidate-location">{{.Location}}</span>
  </div>
  <div class="candidate-skills">{{template "skills" previewSkills .Skills}}</div>
  <div class="candidate-meta">
    <span class="experience">{{.Experience}}</span>
    <span class="job-type">{{.JobType}}</span>
    <span class="registered">Registered {{formatDate .RegisteredDate}}</span>
  </div>
</div>{{end}}

{{define "candidateGrid"}}<div class="candidates-count">{{len .}} candidate{{if ne (len .) 1}}s{{end}} found</div>
<div class="candidates-grid">{{if .}}{{range .}}
{{template "candidateCard" .}}{{end}}{{else}}
<div class="empty-state">No candidates found matching your criteria.</div>{{end}}
</div>{{end}}

{{define "invitationList"}}<div class="invitations-list">{{if .}}{{range .}}
<div class="invitation-card" data-invitation-id="{{.ID}}">
  <div class="invitation-header">
    <h4>{{.Role}}</h4>
    <span class="invitation-date">{{formatDate .Date}}</span>
  </div>
  <div class="invitation-company">{{.CompanyName}}</div>
  <div class="invitation-meta">
    <span class="location">{{.Location}}</span>
    <span class="job-type">{{.JobType}}</span>
  </div>
  <blockquote class="invitation-message">"{{.Message}}"</blockquote>
</div>{{end}}{{else}}
<div class="empty-state">No invitations yet. Companies will reach out when they find your profile interesting!</div>{{end}}
</div>{{end}}

{{define "profileDetail"}}<div class="profile-detail" data-candidate-id="{{.ID}}">
  <h2>{{.FullName}}</h2>
  <p class="contact">{{.Email}} | {{.Phone}}</p>
  <dl>
    <dt>Location</dt><dd>{{.Location}}</dd>
    <dt>Experience</dt><dd>{{.Experience}}</dd>
    <dt>Job Type</dt><dd>{{.JobType}}</dd>
  </dl>
  <div class="profile-skills">{{range .Skills}}<span class="skill-tag">{{.}}</span>{{end}}</div>
  <div class="profile-about">{{if .About}}{{.About}}{{else}}No description provided.{{end}}</div>
</div>{{end}}

{{define "jobSeekerDashboard"}}<section class="dashboard job-seeker-dashboard">
  <header>
    <h2>Welcome, {{.Profile.FullName}}</h2>
    <span class="invitation-count">{{len .Invitations}} invitation{{if ne (len .Invitations) 1}}s{{end}}</span>
  </header>
{{template "profileDetail" .Profile}}
{{template "invitationList" .Invitations}}
</section>{{end}}

{{define "companyDashboard"}}<section class="dashboard company-dashboard">
  <header>
    <h2>{{.Company.Name}}</h2>
    <span class="company-email">{{.Company.Email}}</span>
  </header>
{{template "candidateGrid" .Candidates}}
</section>{{end}}
`
