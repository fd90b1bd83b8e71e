//go:build integration

package test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitcal/internal/fitcal/calendar"
	"github.com/2beens/fitcal/internal/fitcal/logs"
)

func (s *IntegrationTestSuite) TestLogsLifecycle() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()

	form := []byte(`{"dayStatus":"workout","startTime":"18:00","endTime":"19:30","exercises":{"유산소":["러닝머신"]},"weight":"68.9","bodyFatPercent":"17"}`)
	resp, err := s.httpClient.Do(s.newRequest(ctx, "PUT", "/logs/2024-06-10", form))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp, err = s.httpClient.Do(s.newRequest(ctx, "GET", "/logs/2024-06-10", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var saved logs.DailyLog
	require.NoError(t, json.Unmarshal(respBytes, &saved))
	assert.Equal(t, "18:00", saved.StartTime)
	assert.Equal(t, []string{"러닝머신"}, saved.Exercises["유산소"])
	require.NotNil(t, saved.Metrics)
	assert.Equal(t, 68.9, saved.Metrics.Weight)
	assert.Equal(t, 17.0, saved.Metrics.BodyFatPercent)

	// the row lives in postgres
	var stored string
	require.NoError(t, s.dbPool.QueryRow(ctx,
		"SELECT value FROM storage_slot WHERE name = $1", "fitcal_integration",
	).Scan(&stored))
	assert.Contains(t, stored, "2024-06-10")

	resp, err = s.httpClient.Do(s.newRequest(ctx, "GET", "/calendar/2024", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var grid calendar.Grid
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&grid))
	require.NoError(t, resp.Body.Close())
	june := grid.Months[5]
	cell := june.Days[9]
	assert.Equal(t, "2024-06-10", cell.Date)
	assert.True(t, cell.HasLog)
	assert.Equal(t, []string{"유산소"}, cell.Categories)

	resp, err = s.httpClient.Do(s.newRequest(ctx, "DELETE", "/logs/2024-06-10", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp, err = s.httpClient.Do(s.newRequest(ctx, "GET", "/logs/2024-06-10", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}
