package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"job-portal/internal/clock"
	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/infrastructure/kv"
	"job-portal/internal/notify"
	"job-portal/internal/render"
	"job-portal/internal/repository"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	app    *fiber.App
	center *notify.Center
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	clk := clock.NewFakeClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	center := notify.NewCenter(notify.DefaultTTL,
		notify.WithClock(clk),
		notify.WithScheduler(func(time.Duration, func()) {}),
	)
	portal, err := usecase.NewPortal(context.Background(), usecase.PortalParams{
		Store:    repository.NewKVPortalStore(kv.NewMemory(), nil),
		Notifier: center,
		Clock:    clk,
	})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewRegistry(Handlers{
		Session:      handler.NewSessionHandler(portal),
		JobSeeker:    handler.NewJobSeekerHandler(portal),
		Company:      handler.NewCompanyHandler(portal),
		Notification: handler.NewNotificationHandler(center),
		Fragment:     handler.NewFragmentHandler(portal, portal, render.NewRenderer()),
	}, middleware.NewSessionMiddleware(portal)).Register(app)

	return testServer{app: app, center: center}
}

func (s testServer) do(t *testing.T, method, path string, body any) (*http.Response, envelope) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.app.Test(req)
	require.NoError(t, err)

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp, env
}

func (s testServer) html(t *testing.T, path string) (int, string) {
	t.Helper()
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

var ada = map[string]string{
	"full_name":  "Ada Lovelace",
	"email":      "a@x.com",
	"phone":      "555-0100",
	"location":   "London",
	"skills":     "Go, Rust",
	"experience": "Senior",
	"job_type":   "Full-time",
	"about":      "Engines.",
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	resp, env := s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", env.Message)
}

func TestJobSeekerFlow(t *testing.T) {
	s := newTestServer(t)

	resp, _ := s.do(t, http.MethodGet, "/api/v1/job-seekers/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, env := s.do(t, http.MethodPost, "/api/v1/job-seekers", map[string]string{"email": "a@x.com"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Message, "fullName")

	resp, env = s.do(t, http.MethodPost, "/api/v1/job-seekers", ada)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID     string   `json:"id"`
		Skills []string `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{"Go", "Rust"}, created.Skills)

	resp, _ = s.do(t, http.MethodPost, "/api/v1/job-seekers", ada)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, env = s.do(t, http.MethodGet, "/api/v1/job-seekers/me/edit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"skills":"Go, Rust"`)

	edit := map[string]string{}
	for k, v := range ada {
		edit[k] = v
	}
	edit["location"] = "Paris"
	resp, env = s.do(t, http.MethodPut, "/api/v1/job-seekers/me", edit)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"location":"Paris"`)
	assert.Contains(t, string(env.Data), `"id":"`+created.ID+`"`)

	resp, _ = s.do(t, http.MethodPost, "/api/v1/job-seekers/logout", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = s.do(t, http.MethodGet, "/api/v1/job-seekers/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/api/v1/job-seekers/login", map[string]string{"email": "nobody@x.com"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp, _ = s.do(t, http.MethodPost, "/api/v1/job-seekers/login", map[string]string{"email": "a@x.com"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = s.do(t, http.MethodGet, "/api/v1/notifications", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), "Welcome back, Ada Lovelace!")
}

func TestCompanyFlow(t *testing.T) {
	s := newTestServer(t)

	resp, env := s.do(t, http.MethodPost, "/api/v1/job-seekers", ada)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	resp, _ = s.do(t, http.MethodGet, "/api/v1/candidates", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	code, _ := s.html(t, "/fragments/candidates")
	assert.Equal(t, http.StatusUnauthorized, code)

	resp, _ = s.do(t, http.MethodPost, "/api/v1/companies/login", map[string]string{"email": "company@techcorp.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp, env = s.do(t, http.MethodPost, "/api/v1/companies/login", map[string]string{"email": "company@techcorp.com", "password": "demo123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, string(env.Data), "demo123")

	resp, env = s.do(t, http.MethodGet, "/api/v1/session", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"active_role":"company"`)

	resp, env = s.do(t, http.MethodGet, "/api/v1/candidates?search=rust", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), "Ada Lovelace")

	resp, env = s.do(t, http.MethodGet, "/api/v1/candidates?experience=Junior", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(env.Data))

	resp, _ = s.do(t, http.MethodGet, "/api/v1/candidates/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	code, body := s.html(t, "/fragments/candidates?search=cobol")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "No candidates found matching your criteria.")

	code, body = s.html(t, "/fragments/candidates/"+created.ID)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "a@x.com | 555-0100")

	invite := map[string]string{"role": "Backend Engineer", "location": "Remote", "job_type": "Contract", "message": "Let's talk"}
	resp, _ = s.do(t, http.MethodPost, "/api/v1/candidates/missing/invitations", invite)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = s.do(t, http.MethodPost, "/api/v1/candidates/"+created.ID+"/invitations", map[string]string{"role": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, env = s.do(t, http.MethodPost, "/api/v1/candidates/"+created.ID+"/invitations", invite)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"company_name":"TechCorp Solutions"`)

	resp, env = s.do(t, http.MethodGet, "/api/v1/job-seekers/me/invitations", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), "Backend Engineer")

	code, body = s.html(t, "/fragments/dashboard/job-seeker")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "1 invitation")
	assert.Contains(t, body, "TechCorp Solutions")
}

func TestNotificationDismiss(t *testing.T) {
	s := newTestServer(t)
	n := s.center.Show("hello", notify.KindInfo)

	resp, _ := s.do(t, http.MethodDelete, "/api/v1/notifications/"+n.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = s.do(t, http.MethodDelete, "/api/v1/notifications/"+n.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, s.center.Active())
}
