package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio-server/internal/content"
	"portfolio-server/internal/resume"
	"portfolio-server/internal/usecase"
)

const (
	testTemplateDir = "../../../templates"
	testAccessCode  = "opensesame"
)

type fakeRenderer struct{}

func (fakeRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	return []byte("%PDF-1.4 test"), nil
}

type fakeMailer struct {
	sent []string
	fail bool
}

func (m *fakeMailer) SendContact(name, email, message string) error {
	if m.fail {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, name)
	return nil
}

type testServer struct {
	app    *fiber.App
	mailer *fakeMailer
	// cookies accumulated from responses, replayed on every request
	cookies []*http.Cookie
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := usecase.NewResumeStore(resume.Seed)
	exporter := usecase.NewExporter(fakeRenderer{}, nil, testTemplateDir, t.TempDir(), zap.NewNop())
	mailer := &fakeMailer{}

	h := NewHandler(store, exporter, session.New(), mailer, content.Books(), testAccessCode, testTemplateDir, zap.NewNop())
	pages, err := NewPages(testTemplateDir)
	require.NoError(t, err)

	app := fiber.New()
	h.Register(app, pages)
	return &testServer{app: app, mailer: mailer}
}

func (s *testServer) do(t *testing.T, method, target string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range s.cookies {
		req.AddCookie(c)
	}
	resp, err := s.app.Test(req, 10000)
	require.NoError(t, err)
	if cs := resp.Cookies(); len(cs) > 0 {
		s.cookies = cs
	}
	return resp
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, resp *http.Response, out interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	if out != nil && env.Data != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}

func (s *testServer) unlock(t *testing.T) {
	t.Helper()
	resp := s.do(t, fiber.MethodPost, "/api/access", fiber.Map{"code": testAccessCode})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAccessGate(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, fiber.MethodGet, "/api/resume", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = s.do(t, fiber.MethodPost, "/api/access", fiber.Map{"code": "wrong"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	s.unlock(t)

	resp = s.do(t, fiber.MethodGet, "/api/resume", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetResumeSeedsSession(t *testing.T) {
	s := newTestServer(t)
	s.unlock(t)

	resp := s.do(t, fiber.MethodGet, "/api/resume", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rec struct {
		Contact struct {
			FullName string `json:"fullName"`
		} `json:"contact"`
		Skills []struct {
			Name     string `json:"name"`
			Category string `json:"category"`
		} `json:"skills"`
	}
	decode(t, resp, &rec)
	assert.Equal(t, "Tejesh Krishnammagari", rec.Contact.FullName)
	assert.NotEmpty(t, rec.Skills)
}

func TestEditCommitAndRevert(t *testing.T) {
	s := newTestServer(t)
	s.unlock(t)

	var out struct {
		Committed bool   `json:"committed"`
		Value     string `json:"value"`
		Record    struct {
			Summary string `json:"summary"`
		} `json:"record"`
	}

	resp := s.do(t, fiber.MethodPost, "/api/resume/edits", fiber.Map{
		"path": "summary", "draft": "Rewritten summary.", "event": "blur",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &out)
	assert.True(t, out.Committed)
	assert.Equal(t, "Rewritten summary.", out.Record.Summary)

	// escape reverts: the draft never reaches the record
	resp = s.do(t, fiber.MethodPost, "/api/resume/edits", fiber.Map{
		"path": "summary", "draft": "discarded", "event": "escape",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &out)
	assert.False(t, out.Committed)
	assert.Equal(t, "Rewritten summary.", out.Value)
	assert.Equal(t, "Rewritten summary.", out.Record.Summary)

	resp = s.do(t, fiber.MethodPost, "/api/resume/edits", fiber.Map{
		"path": "summary", "draft": "x", "event": "shrug",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAddAndRemoveEntry(t *testing.T) {
	s := newTestServer(t)
	s.unlock(t)

	var out struct {
		ID     string `json:"id"`
		Record struct {
			Projects []struct {
				ID string `json:"id"`
			} `json:"projects"`
		} `json:"record"`
	}
	resp := s.do(t, fiber.MethodPost, "/api/resume/entries", fiber.Map{"list": "projects"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &out)
	require.NotEmpty(t, out.ID)
	before := len(out.Record.Projects)

	resp = s.do(t, fiber.MethodDelete, "/api/resume/entries/projects/"+out.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rec struct {
		Projects []struct {
			ID string `json:"id"`
		} `json:"projects"`
	}
	decode(t, resp, &rec)
	assert.Len(t, rec.Projects, before-1)
}

func TestExportLifecycle(t *testing.T) {
	s := newTestServer(t)
	s.unlock(t)

	resp := s.do(t, fiber.MethodPost, "/api/resume/export", fiber.Map{})
	require.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var started struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decode(t, resp, &started)
	require.NotEmpty(t, started.ID)
	assert.Equal(t, usecase.StatusPending, started.Status)

	var job struct {
		Status string `json:"status"`
	}
	deadline := time.Now().Add(5 * time.Second)
	for job.Status != usecase.StatusCompleted {
		require.True(t, time.Now().Before(deadline), "export did not complete in time")
		time.Sleep(50 * time.Millisecond)
		resp = s.do(t, fiber.MethodGet, "/api/exports/"+started.ID, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		decode(t, resp, &job)
		require.NotEqual(t, usecase.StatusFailed, job.Status)
	}

	resp = s.do(t, fiber.MethodGet, "/api/exports/"+started.ID+"/download", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestExportIsSessionScoped(t *testing.T) {
	owner := newTestServer(t)
	owner.unlock(t)

	resp := owner.do(t, fiber.MethodPost, "/api/resume/export", fiber.Map{})
	require.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	var started struct {
		ID string `json:"id"`
	}
	decode(t, resp, &started)

	// a different session on the same server cannot see the job
	stranger := &testServer{app: owner.app, mailer: owner.mailer}
	stranger.unlock(t)
	resp = stranger.do(t, fiber.MethodGet, "/api/exports/"+started.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestBookReaderFlow(t *testing.T) {
	s := newTestServer(t)

	var state struct {
		Open      bool `json:"open"`
		Index     int  `json:"index"`
		PageCount int  `json:"pageCount"`
		IsCover   bool `json:"isCover"`
	}

	resp := s.do(t, fiber.MethodGet, "/api/books/mongolia", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &state)
	assert.False(t, state.Open)
	assert.Equal(t, 0, state.Index)
	require.Greater(t, state.PageCount, 1)

	resp = s.do(t, fiber.MethodPost, "/api/books/mongolia/open", nil)
	decode(t, resp, &state)
	assert.True(t, state.Open)
	assert.True(t, state.IsCover)

	s.do(t, fiber.MethodPost, "/api/books/mongolia/next", nil)
	resp = s.do(t, fiber.MethodPost, "/api/books/mongolia/next", nil)
	decode(t, resp, &state)
	assert.Equal(t, 2, state.Index)
	assert.False(t, state.IsCover)

	// closing keeps the page; reopening resumes there
	resp = s.do(t, fiber.MethodPost, "/api/books/mongolia/close", nil)
	decode(t, resp, &state)
	assert.False(t, state.Open)
	assert.Equal(t, 2, state.Index)

	resp = s.do(t, fiber.MethodPost, "/api/books/mongolia/open", nil)
	decode(t, resp, &state)
	assert.True(t, state.Open)
	assert.Equal(t, 2, state.Index)

	resp = s.do(t, fiber.MethodGet, "/api/books/unknown", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestBookPreviousClampsAtCover(t *testing.T) {
	s := newTestServer(t)
	s.do(t, fiber.MethodPost, "/api/books/mongolia/open", nil)

	var state struct {
		Index int `json:"index"`
	}
	resp := s.do(t, fiber.MethodPost, "/api/books/mongolia/previous", nil)
	decode(t, resp, &state)
	assert.Equal(t, 0, state.Index)
}

func TestNavSections(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, fiber.MethodGet, "/api/nav/sections", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cfg struct {
		Sections []struct {
			ID string `json:"id"`
		} `json:"sections"`
		LeadIn       int `json:"leadIn"`
		HeaderOffset int `json:"headerOffset"`
		HideAfter    int `json:"hideAfter"`
	}
	decode(t, resp, &cfg)
	assert.Len(t, cfg.Sections, 6)
	assert.Equal(t, 100, cfg.LeadIn)
	assert.Equal(t, 80, cfg.HeaderOffset)
	assert.Equal(t, 50, cfg.HideAfter)
}

func TestContactForm(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, fiber.MethodPost, "/api/contact", fiber.Map{
		"name": "Visitor", "email": "v@example.com", "message": "Hello",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Visitor"}, s.mailer.sent)

	resp = s.do(t, fiber.MethodPost, "/api/contact", fiber.Map{"name": "", "message": "hi"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	s.mailer.fail = true
	resp = s.do(t, fiber.MethodPost, "/api/contact", fiber.Map{"name": "V", "message": "m"})
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHomePageRenders(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, fiber.MethodGet, "/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	html := string(body)
	assert.Contains(t, html, content.Site().Name)
	assert.Contains(t, html, `id="contact"`)
}
