package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitcal/internal/telemetry/metrics"
	"github.com/2beens/fitcal/internal/telemetry/tracing"
)

// Store is the only component that touches the storage slot. Every call
// re-reads the slot; there is no in-memory copy of the data.
type Store struct {
	slot           Slot
	metricsManager *metrics.Manager

	// serializes read-modify-write cycles of this process
	mu       sync.Mutex
	revision atomic.Uint64
}

func NewStore(slot Slot, metricsManager *metrics.Manager) *Store {
	return &Store{
		slot:           slot,
		metricsManager: metricsManager,
	}
}

// Revision changes after every successful write made through this store.
func (s *Store) Revision() uint64 {
	return s.revision.Load()
}

// Load returns the persisted data. An empty slot gives an empty mapping, and
// so does a slot holding unparsable data; the latter is only logged and the
// blob is left in place. Errors of the backing medium are returned.
func (s *Store) Load(ctx context.Context) (_ CalendarData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.logs.load")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("slot", s.slot.Name()))

	raw, err := s.slot.Read(ctx)
	if err != nil {
		if errors.Is(err, ErrSlotEmpty) {
			return CalendarData{}, nil
		}
		return nil, fmt.Errorf("read slot [%s]: %w", s.slot.Name(), err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return CalendarData{}, nil
	}

	var data CalendarData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Warnf("slot [%s] holds corrupt data, using empty calendar: %s", s.slot.Name(), err)
		s.metricsManager.CounterCorruptStorageReads.Inc()
		span.SetAttributes(attribute.Bool("corrupt", true))
		return CalendarData{}, nil
	}
	if data == nil {
		// persisted "null"
		data = CalendarData{}
	}

	span.SetAttributes(attribute.Int("logs", len(data)))
	return data, nil
}

// GetByDate returns false when there is no log for the date.
func (s *Store) GetByDate(ctx context.Context, date string) (DailyLog, bool, error) {
	data, err := s.Load(ctx)
	if err != nil {
		return DailyLog{}, false, err
	}
	dailyLog, ok := data[date]
	return dailyLog, ok, nil
}

// Save inserts or fully replaces the log at its date and returns the whole
// updated calendar. Last writer wins.
func (s *Store) Save(ctx context.Context, dailyLog DailyLog) (_ CalendarData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.logs.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("date", dailyLog.Date))

	if _, err := ParseDate(dailyLog.Date); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	data[dailyLog.Date] = dailyLog.Clone()

	if err := s.persist(ctx, data); err != nil {
		return nil, err
	}
	s.metricsManager.CounterSavedLogs.Inc()

	return data, nil
}

// Delete removes the log at date. It reports whether a log was there.
func (s *Store) Delete(ctx context.Context, date string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.logs.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("date", date))

	if _, err := ParseDate(date); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	if _, ok := data[date]; !ok {
		return false, nil
	}
	delete(data, date)

	if err := s.persist(ctx, data); err != nil {
		return false, err
	}
	s.metricsManager.CounterDeletedLogs.Inc()

	return true, nil
}

// ReplaceAll overwrites the persisted calendar wholesale.
func (s *Store) ReplaceAll(ctx context.Context, data CalendarData) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.logs.replaceAll")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("logs", len(data)))

	if data == nil {
		data = CalendarData{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persist(ctx, data)
}

func (s *Store) persist(ctx context.Context, data CalendarData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal calendar data: %w", err)
	}
	if err := s.slot.Write(ctx, raw); err != nil {
		return fmt.Errorf("write slot [%s]: %w", s.slot.Name(), err)
	}
	s.revision.Add(1)
	s.metricsManager.GaugeStoredLogs.Set(float64(len(data)))
	return nil
}
