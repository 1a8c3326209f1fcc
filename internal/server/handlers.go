package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sozercan/schema-helper/apimodels"
	"github.com/sozercan/schema-helper/internal/analyzer"
	"github.com/sozercan/schema-helper/internal/render"
)

var templateFuncs = template.FuncMap{
	"badgeClass": func(color string) string { return "badge badge-" + color },
}

type modelOption struct {
	Name    string
	Checked bool
}

type pageData struct {
	Models     []modelOption
	Schema     string
	Datatypes  bool
	MinLength  int
	CanAnalyze bool
	Legend     []render.LegendEntry
	View       *render.View
	Error      string
	Notice     string
	SchemaInfo apimodels.SchemaInfo
}

func (s *Server) newPage(req apimodels.AnalysisRequest) pageData {
	model := req.Model
	if !analyzer.IsKnownModel(model) {
		model = analyzer.DefaultModel
	}
	options := make([]modelOption, 0, len(analyzer.Models))
	for _, m := range analyzer.Models {
		options = append(options, modelOption{Name: m, Checked: m == model})
	}

	datatypes := s.analyzer.Datatypes(req)
	return pageData{
		Models:     options,
		Schema:     req.Schema,
		Datatypes:  datatypes,
		MinLength:  s.analyzer.MinSchemaLength(),
		CanAnalyze: s.analyzer.Accepts(req.Schema),
		Legend:     render.Legend(datatypes),
		SchemaInfo: analyzer.Inspect(req.Schema),
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, s.newPage(apimodels.AnalysisRequest{}))
}

func (s *Server) handleAnalyzeForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	req := formRequest(r)
	page := s.newPage(req)

	if !page.CanAnalyze {
		page.Notice = fmt.Sprintf("Paste a schema longer than %d characters to analyze it.", page.MinLength)
		s.renderPage(w, http.StatusUnprocessableEntity, page)
		return
	}

	analysis, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		slog.Error("Analysis request failed", "error", err)
		page.Error = "Error: " + err.Error()
		s.renderPage(w, statusFor(err), page)
		return
	}

	view := render.Render(analysis.Outcome, analysis.Datatypes)
	page.View = &view
	s.renderPage(w, http.StatusOK, page)
}

// formRequest reads the form. The page sends a hidden datatypes=false ahead
// of the checkbox, so the last value is the user's choice.
func formRequest(r *http.Request) apimodels.AnalysisRequest {
	req := apimodels.AnalysisRequest{
		Schema: r.PostFormValue("schema"),
		Model:  r.PostFormValue("model"),
	}
	if vals := r.PostForm["datatypes"]; len(vals) > 0 {
		if on, err := strconv.ParseBool(vals[len(vals)-1]); err == nil {
			req.Datatypes = &on
		}
	}
	return req
}

func (s *Server) renderPage(w http.ResponseWriter, status int, page pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.pages.ExecuteTemplate(w, "index.html", page); err != nil {
		slog.Error("Rendering page failed", "error", err)
	}
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apimodels.ErrorResponse{Error: fmt.Sprintf("Invalid request: %v", err)})
		return
	}
	defer r.Body.Close()

	slog.Debug("Received analysis request", "model", req.Model, "schema_length", len(req.Schema))

	analysis, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		slog.Error("Analysis request failed", "error", err)
		writeJSON(w, statusFor(err), apimodels.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, analysis.Response())
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apimodels.ModelsResponse{
		Models:  analyzer.Models,
		Default: analyzer.DefaultModel,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, analyzer.ErrSchemaTooShort), errors.Is(err, analyzer.ErrUnknownModel):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Encoding response failed", "error", err)
	}
}
