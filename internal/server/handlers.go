package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/pipeline"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

// decodeGenerateRequest decodes and validates the body shared by the PDF and
// HTML endpoints, including the JSON-schema check on the resume data.
func decodeGenerateRequest(r *http.Request) (*types.GenerateRequest, error) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, &BadRequestError{Message: "invalid request body"}
	}
	if len(req.Data) == 0 {
		return nil, &BadRequestError{Message: "missing resume data"}
	}
	if err := req.Validate(); err != nil {
		return nil, &BadRequestError{Message: "invalid request: " + err.Error()}
	}
	if err := schemas.ValidateResumeData(req.Data); err != nil {
		return nil, err
	}
	return &req, nil
}

func pipelineRequest(req *types.GenerateRequest) pipeline.Request {
	return pipeline.Request{
		Data:                req.Data,
		Template:            req.Template,
		CustomColors:        req.CustomColors,
		Country:             req.Country,
		CoverLetter:         req.CoverLetter,
		CoverLetterTemplate: req.CoverLetterTemplate,
	}
}

func (s *Server) handleGeneratePDF(w http.ResponseWriter, r *http.Request) {
	req, err := decodeGenerateRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.generator.GeneratePDF(r.Context(), pipelineRequest(req))
	if err != nil {
		s.writeError(w, err)
		return
	}

	filename := "resume.pdf"
	if req.CoverLetter != nil || req.CoverLetterTemplate != "" {
		filename = "cover-letter.pdf"
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.PDF)))
	w.Header().Set("X-Render-ID", result.RenderID.String())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.PDF); err != nil {
		log.Printf("[SERVER] failed to write pdf response: %v", err)
	}
}

func (s *Server) handleGenerateHTML(w http.ResponseWriter, r *http.Request) {
	req, err := decodeGenerateRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	html, err := s.generator.ComposeHTML(pipelineRequest(req))
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Printf("[SERVER] failed to write html response: %v", err)
	}
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{
		"templates":              templates.IDs(),
		"cover_letter_templates": templates.CoverLetterIDs(),
		"default":                templates.DefaultKey,
	})
}

func (s *Server) handleRecentRenders(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	records, err := s.history.RecentRenders(r.Context(), limit)
	if err != nil {
		log.Printf("[SERVER] failed to load render history: %v", err)
		errorResponse(w, http.StatusInternalServerError, "failed to load render history")
		return
	}
	if records == nil {
		records = []db.RenderRecord{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{"renders": records})
}

// writeError maps pipeline and validation errors to JSON error responses.
// Internal failures are logged but never echoed to the client.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)

	var notFound *templates.ErrTemplateNotFound
	if errors.As(err, &notFound) {
		jsonResponse(w, status, map[string]any{
			"error":           notFound.Error(),
			"valid_templates": notFound.Valid,
		})
		return
	}

	if status >= 500 {
		log.Printf("[SERVER] generation failed: %v", err)
		errorResponse(w, status, "failed to generate document")
		return
	}
	errorResponse(w, status, err.Error())
}
