package editor

import (
	"strings"

	"github.com/2beens/fitcal/internal/fitcal/logs"
)

// Form is the editor input as sent by a client: the selections plus the raw
// metric text.
type Form struct {
	DayStatus      logs.DayStatus      `json:"dayStatus"`
	StartTime      string              `json:"startTime"`
	EndTime        string              `json:"endTime"`
	Exercises      map[string][]string `json:"exercises"`
	Weight         string              `json:"weight"`
	MuscleMass     string              `json:"muscleMass"`
	BodyFatPercent string              `json:"bodyFatPercent"`
}

// Editor replays the form onto a fresh editor for the date, the same way
// the selections would have been made by hand.
func (f Form) Editor(date string) (*Editor, error) {
	e := New(date)
	if f.DayStatus != "" {
		if err := e.SetDayStatus(f.DayStatus); err != nil {
			return nil, err
		}
	}
	if err := e.SetTimeRange(f.StartTime, f.EndTime); err != nil {
		return nil, err
	}
	for cat, details := range f.Exercises {
		cat = strings.TrimSpace(cat)
		if !e.HasCategory(cat) {
			e.ToggleCategory(cat)
		}
		for _, item := range details {
			e.AddCustomDetail(cat, item)
		}
	}
	e.SetMetricsText(f.Weight, f.MuscleMass, f.BodyFatPercent)
	return e, nil
}

// Form returns the current draft state in form shape, e.g. to prefill a
// client editor.
func (e *Editor) Form() Form {
	return Form{
		DayStatus:      e.dayStatus,
		StartTime:      e.startTime,
		EndTime:        e.endTime,
		Exercises:      e.Exercises(),
		Weight:         e.weightText,
		MuscleMass:     e.muscleText,
		BodyFatPercent: e.fatText,
	}
}
