package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/pipeline"
	"github.com/jonathan/resume-studio/internal/session"
)

type stubEngine struct {
	renderErr error
	renders   int
}

func (e *stubEngine) Start(ctx context.Context) error { return nil }
func (e *stubEngine) Healthy(ctx context.Context) bool {
	return true
}
func (e *stubEngine) RenderPDF(ctx context.Context, html string, opts session.RenderOptions) ([]byte, error) {
	e.renders++
	if e.renderErr != nil {
		return nil, e.renderErr
	}
	return []byte("%PDF-1.7 stub"), nil
}
func (e *stubEngine) Stop() {}

func newTestServer(engine session.Engine) *Server {
	sessions := session.NewManager(session.WithEngineFactory(func() session.Engine {
		return engine
	}))
	s := &Server{
		sessions:  sessions,
		generator: &pipeline.Generator{Sessions: sessions},
	}
	s.httpServer = &http.Server{Handler: s.withLogging(s.withCORS(s.routes()))}
	return s
}

func postJSON(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

const validBody = `{"data": {"personal": {"name": "Ada Lovelace", "email": "ada@example.com"}, "summary": "Engineer.", "skills": ["Go"]}}`

func TestHandleHealth(t *testing.T) {
	s := newTestServer(&stubEngine{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "cold", body["session"])
}

func TestHandleListTemplates(t *testing.T) {
	s := newTestServer(&stubEngine{})
	req := httptest.NewRequest(http.MethodGet, "/templates", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Templates   []string `json:"templates"`
		CoverLetter []string `json:"cover_letter_templates"`
		Default     string   `json:"default"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Templates, "government_job")
	assert.Contains(t, body.Templates, "software_developer")
	assert.Contains(t, body.CoverLetter, "classic")
	assert.Equal(t, "government_job", body.Default)
}

func TestGenerateHTML_Success(t *testing.T) {
	s := newTestServer(&stubEngine{})
	rec := postJSON(t, s, "/generate/html", validBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Ada Lovelace")
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
}

func TestGeneratePDF_Success(t *testing.T) {
	engine := &stubEngine{}
	s := newTestServer(engine)
	rec := postJSON(t, s, "/generate/pdf", validBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="resume.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, rec.Header().Get("X-Render-ID"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
	assert.Equal(t, 1, engine.renders)
}

func TestGeneratePDF_CoverLetterFilename(t *testing.T) {
	s := newTestServer(&stubEngine{})
	body := `{"data": {"personal": {"name": "Ada Lovelace"}}, "coverLetterTemplate": "classic"}`
	rec := postJSON(t, s, "/generate/pdf", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="cover-letter.pdf"`, rec.Header().Get("Content-Disposition"))
}

func TestGeneratePDF_MissingData(t *testing.T) {
	s := newTestServer(&stubEngine{})
	rec := postJSON(t, s, "/generate/pdf", `{"template": "government_job"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "missing resume data")
}

func TestGeneratePDF_InvalidJSON(t *testing.T) {
	s := newTestServer(&stubEngine{})
	rec := postJSON(t, s, "/generate/pdf", `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestGeneratePDF_UnknownTemplate(t *testing.T) {
	engine := &stubEngine{}
	s := newTestServer(engine)
	body := `{"data": {"personal": {"name": "Ada"}}, "template": "nonexistent"}`
	rec := postJSON(t, s, "/generate/pdf", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Error          string   `json:"error"`
		ValidTemplates []string `json:"valid_templates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "nonexistent")
	assert.Contains(t, resp.ValidTemplates, "government_job")
	assert.NotContains(t, rec.Body.String(), "%PDF")
	assert.Equal(t, 0, engine.renders, "unknown template must not reach the renderer")
}

func TestGeneratePDF_SchemaViolation(t *testing.T) {
	s := newTestServer(&stubEngine{})
	body := `{"data": {"personal": "not an object", "skills": "not an array"}}`
	rec := postJSON(t, s, "/generate/pdf", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "personal")
}

func TestGeneratePDF_RenderFailure(t *testing.T) {
	engine := &stubEngine{renderErr: &session.SessionError{Op: "render pdf"}}
	s := newTestServer(engine)
	rec := postJSON(t, s, "/generate/pdf", validBody)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "failed to generate document", body["error"])
	assert.Equal(t, 2, engine.renders, "render should be retried once before failing")
}

func TestHandleRecentRenders_NoDatabase(t *testing.T) {
	s := newTestServer(&stubEngine{})
	req := httptest.NewRequest(http.MethodGet, "/renders", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"renders": []}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(&stubEngine{})
	req := httptest.NewRequest(http.MethodOptions, "/generate/pdf", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, HTTPStatus(&BadRequestError{Message: "nope"}))
	assert.Equal(t, 500, HTTPStatus(assert.AnError))
	assert.Equal(t, 500, HTTPStatus(&pipeline.RenderFailedError{Cause: assert.AnError}))
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(&stubEngine{})
	req := httptest.NewRequest(http.MethodGet, "/generate/pdf", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGenerateHTML_InvalidCountry(t *testing.T) {
	s := newTestServer(&stubEngine{})
	body := `{"data": {"personal": {"name": "Ada"}}, "country": "zz"}`
	rec := postJSON(t, s, "/generate/html", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request")
}
