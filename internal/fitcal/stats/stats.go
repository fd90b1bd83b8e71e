package stats

import (
	"strings"

	"github.com/2beens/fitcal/internal/fitcal/logs"
)

// Point is one day of body metrics. A nil value means the day has no reading
// for that metric; a stored 0 also counts as no reading.
type Point struct {
	Date   string   `json:"date"` // MM-DD
	Weight *float64 `json:"weight"`
	Muscle *float64 `json:"muscle"`
	Fat    *float64 `json:"fat"`
}

func (p Point) empty() bool {
	return p.Weight == nil && p.Muscle == nil && p.Fat == nil
}

// Project returns the metric points of the year in date order, skipping
// days that carry no metric at all.
func Project(year int, data logs.CalendarData) []Point {
	prefix := logs.YearPrefix(year)
	points := []Point{}
	for _, date := range data.SortedDates() {
		if !strings.HasPrefix(date, prefix) {
			continue
		}

		p := Point{Date: strings.TrimPrefix(date, prefix)}
		if m := data[date].Metrics; m != nil {
			p.Weight = value(m.Weight)
			p.Muscle = value(m.MuscleMass)
			p.Fat = value(m.BodyFatPercent)
		}
		if p.empty() {
			continue
		}
		points = append(points, p)
	}
	return points
}

func value(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}
