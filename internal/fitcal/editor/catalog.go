package editor

import "github.com/2beens/fitcal/internal/fitcal/logs"

type Category struct {
	Name    string   `json:"name"`
	Details []string `json:"details"`
}

type StatusOption struct {
	Status logs.DayStatus `json:"status"`
	Label  string         `json:"label"`
}

// the order is the one shown in the editor
var catalog = []Category{
	{Name: "헬스", Details: []string{"스쿼트", "벤치프레스", "데드리프트", "숄더프레스", "레그컬", "랫풀다운", "런지"}},
	{Name: "유산소", Details: []string{"러닝머신", "야외러닝", "사이클", "천국의계단", "인터벌", "줄넘기"}},
	{Name: "맨몸운동", Details: []string{"푸쉬업", "풀업", "매달리기", "플랭크", "윗몸일으키기", "버피"}},
	{Name: "요가/필라테스", Details: []string{"매트요가", "기구필라테스", "폼롤러", "스트레칭"}},
	{Name: "구기종목", Details: []string{"축구", "농구", "배드민턴", "테니스", "골프"}},
	{Name: "기타", Details: []string{}},
}

var statusOptions = []StatusOption{
	{Status: logs.DayStatusWorkout, Label: "💪 운동"},
	{Status: logs.DayStatusRest, Label: "💤 휴식"},
	{Status: logs.DayStatusTravel, Label: "✈️ 여행"},
	{Status: logs.DayStatusSick, Label: "🤒 아픔"},
}

// Catalog returns a copy of the fixed exercise categories with their
// suggested detail items.
func Catalog() []Category {
	out := make([]Category, 0, len(catalog))
	for _, c := range catalog {
		out = append(out, Category{
			Name:    c.Name,
			Details: append([]string{}, c.Details...),
		})
	}
	return out
}

func StatusOptions() []StatusOption {
	return append([]StatusOption{}, statusOptions...)
}

// CategoryIndex gives the catalog position of a category, or -1 for custom ones.
func CategoryIndex(name string) int {
	for i, c := range catalog {
		if c.Name == name {
			return i
		}
	}
	return -1
}
