package stats

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type CsvRenderer struct {
}

func NewCsvRenderer() *CsvRenderer {
	return &CsvRenderer{}
}

// Render writes one row per point; missing values are left blank.
func (r *CsvRenderer) Render(points []Point) (string, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	rows := make([][]string, 0, len(points)+1)
	rows = append(rows, []string{"date", "weight", "muscle", "fat"})
	for _, p := range points {
		rows = append(rows, []string{p.Date, formatValue(p.Weight), formatValue(p.Muscle), formatValue(p.Fat)})
	}

	if err := writer.WriteAll(rows); err != nil {
		log.Errorf("error writing stats csv: %s", err)
		return "", err
	}

	return b.String(), nil
}

func formatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
