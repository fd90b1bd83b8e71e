package fitcal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcal/internal/fitcal/backup"
	"github.com/2beens/fitcal/internal/fitcal/calendar"
	"github.com/2beens/fitcal/internal/fitcal/editor"
	"github.com/2beens/fitcal/internal/fitcal/logs"
	"github.com/2beens/fitcal/internal/fitcal/stats"
	"github.com/2beens/fitcal/internal/middleware"
	"github.com/2beens/fitcal/internal/telemetry/metrics"
	"github.com/2beens/fitcal/pkg"
)

const maxBackupSize = 10 << 20

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=fitcal_test

type logStore interface {
	Load(ctx context.Context) (logs.CalendarData, error)
	GetByDate(ctx context.Context, date string) (logs.DailyLog, bool, error)
	Save(ctx context.Context, dailyLog logs.DailyLog) (logs.CalendarData, error)
	Delete(ctx context.Context, date string) (bool, error)
}

type projections interface {
	Calendar(ctx context.Context, year int, today string) (calendar.Grid, error)
	Stats(ctx context.Context, year int) ([]stats.Point, error)
	Charts(ctx context.Context, year int) (stats.Charts, error)
}

type backupCodec interface {
	Export(ctx context.Context, data logs.CalendarData) ([]byte, error)
	Import(ctx context.Context, raw []byte) (logs.CalendarData, error)
}

type statsRenderer interface {
	Render(points []stats.Point) (string, error)
}

type Handler struct {
	store       logStore
	views       projections
	codec       backupCodec
	csvRenderer statsRenderer
	clock       pkg.Clock
}

func NewHandler(
	store logStore,
	views projections,
	codec backupCodec,
	csvRenderer statsRenderer,
	clock pkg.Clock,
) *Handler {
	return &Handler{
		store:       store,
		views:       views,
		codec:       codec,
		csvRenderer: csvRenderer,
		clock:       clock,
	}
}

// SetupRoutes registers all fitcal routes. The backup import is rate limited
// when a limiter is given.
func (handler *Handler) SetupRoutes(
	r *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	importAllowedPerMin int,
	metricsManager *metrics.Manager,
) {
	r.HandleFunc("/logs", handler.HandleList).Methods("GET", "OPTIONS").Name("list-logs")
	r.HandleFunc("/logs/{date}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-log")
	r.HandleFunc("/logs/{date}", handler.HandleSave).Methods("PUT", "OPTIONS").Name("save-log")
	r.HandleFunc("/logs/{date}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-log")
	r.HandleFunc("/calendar/{year:[0-9]{4}}", handler.HandleCalendar).Methods("GET", "OPTIONS").Name("calendar")
	r.HandleFunc("/stats/{year:[0-9]{4}}", handler.HandleStats).Methods("GET", "OPTIONS").Name("stats")
	r.HandleFunc("/stats/{year:[0-9]{4}}/charts", handler.HandleCharts).Methods("GET", "OPTIONS").Name("stats-charts")
	r.HandleFunc("/editor/catalog", handler.HandleCatalog).Methods("GET", "OPTIONS").Name("editor-catalog")
	r.HandleFunc("/editor/{date}", handler.HandleEditorForm).Methods("GET", "OPTIONS").Name("editor-form")
	r.HandleFunc("/backup", handler.HandleExport).Methods("GET", "OPTIONS").Name("backup-export")

	var importHandler http.Handler = http.HandlerFunc(handler.HandleImport)
	if rateLimiter != nil {
		importHandler = middleware.RateLimit(rateLimiter, "backup-import", importAllowedPerMin, metricsManager)(importHandler)
	}
	r.Handle("/backup", importHandler).Methods("POST", "OPTIONS").Name("backup-import")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	data, err := handler.store.Load(r.Context())
	if err != nil {
		log.Errorf("load logs: %s", err)
		http.Error(w, "failed to get logs", http.StatusInternalServerError)
		return
	}
	handler.writeJSON(w, data, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	date, ok := dateVar(w, r)
	if !ok {
		return
	}

	dailyLog, found, err := handler.store.GetByDate(r.Context(), date)
	if err != nil {
		log.Errorf("get log [%s]: %s", date, err)
		http.Error(w, "failed to get log", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "log not found", http.StatusNotFound)
		return
	}
	handler.writeJSON(w, dailyLog, http.StatusOK)
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	date, ok := dateVar(w, r)
	if !ok {
		return
	}

	var form editor.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Errorf("save log [%s], decode form: %s", date, err)
		http.Error(w, "invalid log form", http.StatusBadRequest)
		return
	}

	draft, err := form.Editor(date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := handler.store.Save(r.Context(), draft.Commit())
	if err != nil {
		log.Errorf("save log [%s]: %s", date, err)
		http.Error(w, "failed to save log", http.StatusInternalServerError)
		return
	}

	log.Debugf("log saved: [%s] [%s]", date, form.DayStatus)
	handler.writeJSON(w, data, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	date, ok := dateVar(w, r)
	if !ok {
		return
	}

	deleted, err := handler.store.Delete(r.Context(), date)
	if err != nil {
		log.Errorf("delete log [%s]: %s", date, err)
		http.Error(w, "error, log not deleted, internal server error", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "log not found", http.StatusNotFound)
		return
	}

	log.Debugf("log deleted: [%s]", date)
	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%s", date))
}

func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	year, ok := yearVar(w, r)
	if !ok {
		return
	}

	today := logs.FormatDate(handler.clock.Now())
	grid, err := handler.views.Calendar(r.Context(), year, today)
	if err != nil {
		log.Errorf("calendar [%d]: %s", year, err)
		http.Error(w, "failed to get calendar", http.StatusInternalServerError)
		return
	}
	handler.writeJSON(w, grid, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	year, ok := yearVar(w, r)
	if !ok {
		return
	}

	points, err := handler.views.Stats(r.Context(), year)
	if err != nil {
		log.Errorf("stats [%d]: %s", year, err)
		http.Error(w, "failed to get stats", http.StatusInternalServerError)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "text/csv") {
		out, err := handler.csvRenderer.Render(points)
		if err != nil {
			http.Error(w, "failed to render stats", http.StatusInternalServerError)
			return
		}
		pkg.WriteResponse(w, pkg.ContentType.CSV, out, http.StatusOK)
		return
	}

	handler.writeJSON(w, map[string]any{
		"year":   year,
		"points": points,
	}, http.StatusOK)
}

func (handler *Handler) HandleCharts(w http.ResponseWriter, r *http.Request) {
	year, ok := yearVar(w, r)
	if !ok {
		return
	}

	charts, err := handler.views.Charts(r.Context(), year)
	if err != nil {
		log.Errorf("charts [%d]: %s", year, err)
		http.Error(w, "failed to get charts", http.StatusInternalServerError)
		return
	}
	handler.writeJSON(w, charts, http.StatusOK)
}

func (handler *Handler) HandleCatalog(w http.ResponseWriter, _ *http.Request) {
	handler.writeJSON(w, map[string]any{
		"categories": editor.Catalog(),
		"statuses":   editor.StatusOptions(),
	}, http.StatusOK)
}

// HandleEditorForm returns the editor prefilled for the date: the saved log
// when there is one, defaults otherwise.
func (handler *Handler) HandleEditorForm(w http.ResponseWriter, r *http.Request) {
	date, ok := dateVar(w, r)
	if !ok {
		return
	}

	dailyLog, found, err := handler.store.GetByDate(r.Context(), date)
	if err != nil {
		log.Errorf("editor form [%s]: %s", date, err)
		http.Error(w, "failed to get log", http.StatusInternalServerError)
		return
	}

	draft := editor.New(date)
	if found {
		draft = editor.FromLog(dailyLog)
	}
	handler.writeJSON(w, draft.Form(), http.StatusOK)
}

func (handler *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	data, err := handler.store.Load(r.Context())
	if err != nil {
		log.Errorf("export, load logs: %s", err)
		http.Error(w, "failed to export", http.StatusInternalServerError)
		return
	}

	out, err := handler.codec.Export(r.Context(), data)
	if err != nil {
		log.Errorf("export: %s", err)
		http.Error(w, "failed to export", http.StatusInternalServerError)
		return
	}

	pkg.WriteAttachment(w, pkg.ContentType.JSON, backup.FileName(handler.clock.Now()), out)
}

func (handler *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBackupSize))
	if err != nil {
		log.Errorf("import, read body: %s", err)
		http.Error(w, "failed to read backup", http.StatusBadRequest)
		return
	}

	data, err := handler.codec.Import(r.Context(), raw)
	if err != nil {
		if errors.Is(err, backup.ErrImportParse) {
			http.Error(w, "invalid backup file: "+err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("import: %s", err)
		http.Error(w, "failed to import backup", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"imported": %d}`, len(data)))
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v any, status int) {
	resp, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, status)
}

func dateVar(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := mux.Vars(r)["date"]
	if _, err := logs.ParseDate(date); err != nil {
		http.Error(w, "error, invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return "", false
	}
	return date, true
}

func yearVar(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil || year < 1 {
		http.Error(w, "error, invalid year", http.StatusBadRequest)
		return 0, false
	}
	return year, true
}
