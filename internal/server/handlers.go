package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jonathan/resume-parser/internal/extract"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

// maxUploadBytes bounds the multipart upload size.
const maxUploadBytes = 10 << 20

// ParseResponse is the response for /parse.
type ParseResponse struct {
	ID     string             `json:"id"`
	Resume *types.Resume      `json:"resume"`
	Score  *types.ScoreResult `json:"score,omitempty"`
}

// ScoreRequest is the request body for /score.
type ScoreRequest struct {
	Resume *types.Resume `json:"resume" validate:"required"`
}

// handleParse accepts a resume file upload, extracts its text, and returns
// the normalized record. The OCR fallback is not offered over HTTP; a
// scanned document fails with the extraction error instead.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing file field 'file'")
		return
	}
	defer func() { _ = file.Close() }()

	fileType := r.FormValue("type")
	if fileType == "" {
		fileType = extract.DetectType(header.Filename)
	}

	// Extractors work on paths, so the upload lands in a temp file first.
	tmp, err := os.CreateTemp("", "resume-*"+filepath.Ext(header.Filename))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to buffer upload")
		return
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()
	if _, err := io.Copy(tmp, file); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to buffer upload")
		return
	}

	text, err := extract.ExtractText(r.Context(), s.registry, tmp.Name(), fileType, extract.Options{})
	if err != nil {
		s.errorResponse(w, extractionStatus(err), err.Error())
		return
	}

	resume := parsing.Parse(text)

	resp := ParseResponse{
		ID:     uuid.NewString(),
		Resume: resume,
	}
	if r.FormValue("score") == "true" {
		result := scoring.Score(resume)
		resp.Score = &result
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleScore recomputes the ATS score for an edited record.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, scoring.Score(req.Resume))
}

// extractionStatus maps the boundary error taxonomy onto HTTP status codes.
func extractionStatus(err error) int {
	var unsupported *extract.UnsupportedTypeError
	if errors.As(err, &unsupported) {
		return http.StatusUnsupportedMediaType
	}

	var insufficient *extract.InsufficientTextError
	var ocrInsufficient *extract.OCRInsufficientTextError
	var extraction *extract.ExtractionError
	if errors.As(err, &insufficient) || errors.As(err, &ocrInsufficient) || errors.As(err, &extraction) {
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}
