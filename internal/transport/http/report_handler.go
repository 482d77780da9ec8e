package http

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"stanpulse/internal/config"
	apierrors "stanpulse/internal/errors"
	"stanpulse/internal/files"
)

// ReportHandler serves the CSV reports a pipeline run left in the reports
// directory.
type ReportHandler struct {
	paths     *config.Paths
	discovery *files.Discovery
	logger    *slog.Logger
}

// NewReportHandler creates a report handler rooted at the reports directory.
func NewReportHandler(paths *config.Paths, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		paths:     paths,
		discovery: files.NewDiscovery(paths.ReportsDir),
		logger:    logger.With(slog.String("handler", "reports")),
	}
}

// Routes returns the report routes.
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListReports)
	r.Get("/{name}", h.DownloadReport)
	return r
}

// ReportInfo describes one available report file.
type ReportInfo struct {
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	ModTime string `json:"mod_time"`
}

// ListReports handles GET /api/reports.
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	found, err := h.discovery.FindCSVFiles(".")
	if err != nil {
		// No reports directory yet means no reports, not a failure.
		if !errors.Is(err, fs.ErrNotExist) {
			h.logger.ErrorContext(r.Context(), "failed to list reports",
				slog.String("error", err.Error()))
			render.Render(w, r, apierrors.FileSystemError(err))
			return
		}
		found = nil
	}

	reports := make([]ReportInfo, 0, len(found))
	for _, f := range found {
		reports = append(reports, ReportInfo{
			Name:    f.Name,
			Size:    f.Size,
			ModTime: f.ModTime.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	render.JSON(w, r, map[string]interface{}{
		"reports": reports,
		"count":   len(reports),
	})
}

// DownloadReport handles GET /api/reports/{name}. Only bare CSV file names
// under the reports directory are served.
func (h *ReportHandler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !validReportName(name) {
		render.Render(w, r, apierrors.ErrInvalidRequest)
		return
	}

	path := h.paths.GetReportPath(name)
	if _, err := os.Stat(path); err != nil {
		render.Render(w, r, apierrors.NotFoundError(name))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+name+"\"")
	http.ServeFile(w, r, path)
}

// validReportName rejects path traversal and non-CSV names.
func validReportName(name string) bool {
	if name == "" || name != filepath.Base(name) {
		return false
	}
	if strings.Contains(name, "..") {
		return false
	}
	return strings.HasSuffix(strings.ToLower(name), ".csv")
}
