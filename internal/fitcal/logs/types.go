package logs

import "sort"

type DayStatus string

const (
	DayStatusWorkout DayStatus = "workout"
	DayStatusRest    DayStatus = "rest"
	DayStatusTravel  DayStatus = "travel"
	DayStatusSick    DayStatus = "sick"
)

var DayStatuses = []DayStatus{
	DayStatusWorkout,
	DayStatusRest,
	DayStatusTravel,
	DayStatusSick,
}

func (s DayStatus) Valid() bool {
	switch s {
	case DayStatusWorkout, DayStatusRest, DayStatusTravel, DayStatusSick:
		return true
	}
	return false
}

// BodyMetrics is either fully present or absent on a DailyLog.
type BodyMetrics struct {
	Weight         float64 `json:"weight"`
	MuscleMass     float64 `json:"muscleMass"`
	BodyFatPercent float64 `json:"bodyFatPercent"`
}

type DailyLog struct {
	Date      string              `json:"date"`
	DayStatus DayStatus           `json:"dayStatus,omitempty"`
	StartTime string              `json:"startTime,omitempty"`
	EndTime   string              `json:"endTime,omitempty"`
	Exercises map[string][]string `json:"exercises,omitempty"`
	Metrics   *BodyMetrics        `json:"metrics,omitempty"`
}

// EffectiveStatus treats a record without status as a workout day.
func (l DailyLog) EffectiveStatus() DayStatus {
	if l.DayStatus == "" {
		return DayStatusWorkout
	}
	return l.DayStatus
}

// Clone returns a deep copy, so callers can hand logs around without sharing
// the exercises map or the metrics pointer.
func (l DailyLog) Clone() DailyLog {
	c := l
	if l.Exercises != nil {
		c.Exercises = make(map[string][]string, len(l.Exercises))
		for cat, details := range l.Exercises {
			if details == nil {
				c.Exercises[cat] = nil
				continue
			}
			c.Exercises[cat] = append([]string{}, details...)
		}
	}
	if l.Metrics != nil {
		m := *l.Metrics
		c.Metrics = &m
	}
	return c
}

// CalendarData maps a YYYY-MM-DD date to its log.
type CalendarData map[string]DailyLog

func (d CalendarData) Clone() CalendarData {
	c := make(CalendarData, len(d))
	for date, l := range d {
		c[date] = l.Clone()
	}
	return c
}

// SortedDates returns the keys in chronological order. Zero-padded dates sort
// correctly as plain strings.
func (d CalendarData) SortedDates() []string {
	dates := make([]string, 0, len(d))
	for date := range d {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}
