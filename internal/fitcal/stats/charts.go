package stats

type Metric string

const (
	MetricWeight Metric = "weight"
	MetricMuscle Metric = "muscle"
	MetricFat    Metric = "fat"
)

type SeriesPoint struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// Domain is the vertical scale of a chart, [min-1, max+1] over the observed
// values. It is nil when the series has no value at all.
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Series struct {
	Metric Metric        `json:"metric"`
	Title  string        `json:"title"`
	Points []SeriesPoint `json:"points"`
	Domain *Domain       `json:"domain"`
}

type Charts struct {
	Year   int      `json:"year"`
	Series []Series `json:"series"`
}

// BuildCharts splits the points into the three independent chart series.
func BuildCharts(year int, points []Point) Charts {
	return Charts{
		Year: year,
		Series: []Series{
			buildSeries(MetricWeight, "Weight History (kg)", points, func(p Point) *float64 { return p.Weight }),
			buildSeries(MetricMuscle, "Muscle Mass (kg)", points, func(p Point) *float64 { return p.Muscle }),
			buildSeries(MetricFat, "Body Fat (%)", points, func(p Point) *float64 { return p.Fat }),
		},
	}
}

func buildSeries(metric Metric, title string, points []Point, pick func(Point) *float64) Series {
	s := Series{
		Metric: metric,
		Title:  title,
		Points: make([]SeriesPoint, 0, len(points)),
	}
	for _, p := range points {
		v := pick(p)
		s.Points = append(s.Points, SeriesPoint{Date: p.Date, Value: v})
		if v == nil {
			continue
		}
		if s.Domain == nil {
			s.Domain = &Domain{Min: *v, Max: *v}
			continue
		}
		s.Domain.Min = min(s.Domain.Min, *v)
		s.Domain.Max = max(s.Domain.Max, *v)
	}
	if s.Domain != nil {
		s.Domain.Min--
		s.Domain.Max++
	}
	return s
}
