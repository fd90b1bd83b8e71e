package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitcal/internal/fitcal/logs"
	"github.com/2beens/fitcal/internal/telemetry/metrics"
	"github.com/2beens/fitcal/internal/telemetry/tracing"
)

// ErrImportParse covers backups that are not valid JSON as well as ones that
// do not have the shape of calendar data.
var ErrImportParse = errors.New("backup import parse failure")

//go:generate mockgen -source=$GOFILE -destination=codec_mocks_test.go -package=backup

type storeReplacer interface {
	ReplaceAll(ctx context.Context, data logs.CalendarData) error
}

// FileName is the name an export made at t is offered under.
func FileName(t time.Time) string {
	return fmt.Sprintf("fitcal_backup_%s.json", logs.FormatDate(t))
}

// Export renders the calendar as indented JSON.
func Export(data logs.CalendarData) ([]byte, error) {
	if data == nil {
		data = logs.CalendarData{}
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	return out, nil
}

// Parse decodes and validates a backup. Every entry must carry its own key as
// date, and a day status, when set, must be a known one.
func Parse(raw []byte) (logs.CalendarData, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrImportParse, err)
	}
	if entries == nil {
		return nil, fmt.Errorf("%w: backup is not an object", ErrImportParse)
	}

	data := make(logs.CalendarData, len(entries))
	for key, entryRaw := range entries {
		var entry logs.DailyLog
		if err := json.Unmarshal(entryRaw, &entry); err != nil {
			return nil, fmt.Errorf("%w: entry [%s]: %s", ErrImportParse, key, err)
		}
		if err := validateEntry(key, entry); err != nil {
			return nil, fmt.Errorf("%w: entry [%s]: %s", ErrImportParse, key, err)
		}
		data[key] = entry
	}

	return data, nil
}

func validateEntry(key string, entry logs.DailyLog) error {
	if entry.Date == "" {
		return errors.New("missing date")
	}
	if entry.Date != key {
		return fmt.Errorf("date [%s] does not match key", entry.Date)
	}
	if _, err := logs.ParseDate(key); err != nil {
		return err
	}
	if entry.DayStatus != "" && !entry.DayStatus.Valid() {
		return fmt.Errorf("unknown day status [%s]", entry.DayStatus)
	}
	for cat := range entry.Exercises {
		if trimmed := strings.TrimSpace(cat); trimmed == "" || trimmed != cat {
			return fmt.Errorf("invalid exercise category [%s]", cat)
		}
	}
	return nil
}

// Codec exports the store and restores it from a backup. A restore replaces
// the whole store; nothing is merged.
type Codec struct {
	store          storeReplacer
	metricsManager *metrics.Manager
}

func NewCodec(store storeReplacer, metricsManager *metrics.Manager) *Codec {
	return &Codec{
		store:          store,
		metricsManager: metricsManager,
	}
}

func (c *Codec) Export(ctx context.Context, data logs.CalendarData) (_ []byte, err error) {
	_, span := tracing.GlobalBackupTracer.Start(ctx, "backup.export")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("logs", len(data)))

	out, err := Export(data)
	if err != nil {
		return nil, err
	}
	c.metricsManager.CounterExports.Inc()
	return out, nil
}

// Import validates the backup and only then replaces the store with it. On
// any error the store is left untouched.
func (c *Codec) Import(ctx context.Context, raw []byte) (_ logs.CalendarData, err error) {
	ctx, span := tracing.GlobalBackupTracer.Start(ctx, "backup.import")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("bytes", len(raw)))

	start := time.Now()
	defer func() {
		c.metricsManager.HistImportDuration.Observe(time.Since(start).Seconds())
	}()

	data, err := Parse(raw)
	if err != nil {
		c.metricsManager.CounterImportFailures.Inc()
		log.Warnf("backup import rejected: %s", err)
		return nil, err
	}

	if err := c.store.ReplaceAll(ctx, data); err != nil {
		return nil, fmt.Errorf("replace store: %w", err)
	}

	c.metricsManager.CounterImports.Inc()
	log.Infof("backup imported, %d logs", len(data))
	span.SetAttributes(attribute.Int("logs", len(data)))

	return data, nil
}
