package calendar

import (
	"sort"
	"strings"
	"time"

	"github.com/2beens/fitcal/internal/fitcal/editor"
	"github.com/2beens/fitcal/internal/fitcal/logs"
)

const unknownTime = "??:??"

var (
	monthLabels = [12]string{
		"1월", "2월", "3월", "4월", "5월", "6월",
		"7월", "8월", "9월", "10월", "11월", "12월",
	}
	weekdayLabels = []string{"일", "월", "화", "수", "목", "금", "토"}
)

type Cell struct {
	Day     int    `json:"day"`
	Date    string `json:"date"`
	IsToday bool   `json:"isToday"`
	HasLog  bool   `json:"hasLog"`
	Tooltip string `json:"tooltip"`

	// set only for days with a log
	Status     logs.DayStatus `json:"status,omitempty"`
	Glyph      string         `json:"glyph,omitempty"`
	StartLabel string         `json:"startLabel,omitempty"`
	EndLabel   string         `json:"endLabel,omitempty"`
	Categories []string       `json:"categories,omitempty"`
}

type Month struct {
	Month         time.Month `json:"month"`
	Label         string     `json:"label"`
	LeadingBlanks int        `json:"leadingBlanks"`
	DaysInMonth   int        `json:"daysInMonth"`
	Days          []Cell     `json:"days"`
}

type Grid struct {
	Year     int      `json:"year"`
	Weekdays []string `json:"weekdays"`
	Months   []Month  `json:"months"`
}

// Project builds the twelve month grids of the year. today is a YYYY-MM-DD
// date; the matching cell is flagged whether it has a log or not.
func Project(year int, data logs.CalendarData, today string) Grid {
	grid := Grid{
		Year:     year,
		Weekdays: append([]string{}, weekdayLabels...),
		Months:   make([]Month, 0, 12),
	}
	for m := time.January; m <= time.December; m++ {
		grid.Months = append(grid.Months, projectMonth(year, m, data, today))
	}
	return grid
}

// LeadingBlanks is the weekday of the first day of the month, 0 for Sunday.
func LeadingBlanks(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// DaysIn counts the days of the month, leap years included.
func DaysIn(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func projectMonth(year int, month time.Month, data logs.CalendarData, today string) Month {
	days := DaysIn(year, month)
	m := Month{
		Month:         month,
		Label:         monthLabels[month-1],
		LeadingBlanks: LeadingBlanks(year, month),
		DaysInMonth:   days,
		Days:          make([]Cell, 0, days),
	}

	for d := 1; d <= days; d++ {
		date := logs.DateKey(year, month, d)
		cell := Cell{
			Day:     d,
			Date:    date,
			IsToday: date == today,
			Tooltip: date,
		}
		if l, ok := data[date]; ok {
			annotate(&cell, l)
		}
		m.Days = append(m.Days, cell)
	}

	return m
}

func annotate(cell *Cell, l logs.DailyLog) {
	cell.HasLog = true
	cell.Status = l.EffectiveStatus()

	switch cell.Status {
	case logs.DayStatusRest:
		cell.Glyph = "💤"
		cell.Tooltip += "\n💤 휴식"
	case logs.DayStatusTravel:
		cell.Glyph = "✈️"
		cell.Tooltip += "\n✈️ 여행"
	case logs.DayStatusSick:
		cell.Glyph = "🤒"
		cell.Tooltip += "\n🤒 아픔/몸살"
	default:
		// workout, and anything unknown written out of band
		cell.Status = logs.DayStatusWorkout
		if l.StartTime != "" || l.EndTime != "" {
			cell.Tooltip += "\n⏰ " + orUnknown(l.StartTime) + " ~ " + orUnknown(l.EndTime)
		}
		if l.StartTime != "" {
			cell.StartLabel = l.StartTime + "~"
		}
		cell.EndLabel = l.EndTime

		cell.Categories = OrderedCategories(l.Exercises)
		if len(cell.Categories) > 0 {
			cell.Tooltip += "\n💪 " + strings.Join(cell.Categories, ", ")
		}
	}
}

// OrderedCategories lists catalog categories in catalog order first, then
// custom ones alphabetically.
func OrderedCategories(exercises map[string][]string) []string {
	if len(exercises) == 0 {
		return nil
	}
	cats := make([]string, 0, len(exercises))
	for cat := range exercises {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		ci, cj := editor.CategoryIndex(cats[i]), editor.CategoryIndex(cats[j])
		switch {
		case ci >= 0 && cj >= 0:
			return ci < cj
		case ci >= 0:
			return true
		case cj >= 0:
			return false
		}
		return cats[i] < cats[j]
	})
	return cats
}

func orUnknown(t string) string {
	if t == "" {
		return unknownTime
	}
	return t
}
