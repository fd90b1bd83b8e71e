package editor

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitcal/internal/fitcal/logs"
)

const timeLayout = "15:04"

// Editor holds unsaved edits for one date. Nothing is persisted until the
// result of Commit is saved to the store.
type Editor struct {
	date      string
	dayStatus logs.DayStatus
	startTime string
	endTime   string
	exercises map[string][]string

	// raw text, so partial numeric input is kept as typed
	weightText string
	muscleText string
	fatText    string

	customInputs map[string]string
}

func New(date string) *Editor {
	return &Editor{
		date:         date,
		dayStatus:    logs.DayStatusWorkout,
		exercises:    map[string][]string{},
		customInputs: map[string]string{},
	}
}

// FromLog seeds an editor with an existing record.
func FromLog(l logs.DailyLog) *Editor {
	e := New(l.Date)
	if l.DayStatus != "" {
		e.dayStatus = l.DayStatus
	}
	e.startTime = l.StartTime
	e.endTime = l.EndTime
	for cat, details := range l.Exercises {
		e.exercises[cat] = append([]string{}, details...)
	}
	if l.Metrics != nil {
		e.weightText = metricText(l.Metrics.Weight)
		e.muscleText = metricText(l.Metrics.MuscleMass)
		e.fatText = metricText(l.Metrics.BodyFatPercent)
	}
	return e
}

func (e *Editor) Date() string {
	return e.date
}

func (e *Editor) DayStatus() logs.DayStatus {
	return e.dayStatus
}

func (e *Editor) SetDayStatus(status logs.DayStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	e.dayStatus = status
	return nil
}

// SetTimeRange sets start and end; either may be empty.
func (e *Editor) SetTimeRange(start, end string) error {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if err := checkTime(start); err != nil {
		return err
	}
	if err := checkTime(end); err != nil {
		return err
	}
	e.startTime = start
	e.endTime = end
	return nil
}

func (e *Editor) SetMetricsText(weight, muscleMass, bodyFatPercent string) {
	e.weightText = weight
	e.muscleText = muscleMass
	e.fatText = bodyFatPercent
}

func (e *Editor) SetCustomInput(category, text string) {
	e.customInputs[category] = text
}

func (e *Editor) CustomInput(category string) string {
	return e.customInputs[category]
}

func (e *Editor) HasCategory(category string) bool {
	_, ok := e.exercises[category]
	return ok
}

// Exercises returns a copy of the current selection.
func (e *Editor) Exercises() map[string][]string {
	return copyExercises(e.exercises)
}

// ToggleCategory removes an active category together with its details, or
// adds it with no details selected.
func (e *Editor) ToggleCategory(category string) {
	category = strings.TrimSpace(category)
	if category == "" {
		return
	}
	if _, ok := e.exercises[category]; ok {
		delete(e.exercises, category)
		return
	}
	e.exercises[category] = []string{}
}

// ToggleDetail flips the item within an active category. It does nothing
// for inactive categories.
func (e *Editor) ToggleDetail(category, item string) {
	details, ok := e.exercises[category]
	if !ok {
		return
	}
	if i := slices.Index(details, item); i >= 0 {
		e.exercises[category] = slices.Delete(details, i, i+1)
		return
	}
	e.exercises[category] = append(details, item)
}

// AddCustomDetail adds the trimmed text to an active category and clears
// its custom input. An item that is already selected stays selected.
func (e *Editor) AddCustomDetail(category, text string) {
	item := strings.TrimSpace(text)
	if item == "" {
		return
	}
	details, ok := e.exercises[category]
	if !ok {
		return
	}
	if !slices.Contains(details, item) {
		e.exercises[category] = append(details, item)
	}
	e.customInputs[category] = ""
}

// Commit assembles the log to be saved. Metrics are set only when at least
// one metric text is non-empty; text that does not parse counts as 0.
// Exercises are kept only for workout days.
func (e *Editor) Commit() logs.DailyLog {
	l := logs.DailyLog{
		Date:      e.date,
		DayStatus: e.dayStatus,
		StartTime: e.startTime,
		EndTime:   e.endTime,
	}

	if e.weightText != "" || e.muscleText != "" || e.fatText != "" {
		l.Metrics = &logs.BodyMetrics{
			Weight:         parseMetric(e.weightText),
			MuscleMass:     parseMetric(e.muscleText),
			BodyFatPercent: parseMetric(e.fatText),
		}
	}

	if e.dayStatus == logs.DayStatusWorkout && len(e.exercises) > 0 {
		l.Exercises = copyExercises(e.exercises)
	}

	return l
}

func parseMetric(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func metricText(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func checkTime(t string) error {
	if t == "" {
		return nil
	}
	parsed, err := time.Parse(timeLayout, t)
	if err != nil || parsed.Format(timeLayout) != t {
		return fmt.Errorf("%w: %q", ErrInvalidTime, t)
	}
	return nil
}

func copyExercises(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for cat, details := range in {
		out[cat] = append([]string{}, details...)
	}
	return out
}
