//go:build integration

package test

import (
	"context"
	"io"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestBackupImportRateLimited() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()

	resp, err := s.httpClient.Do(s.newRequest(ctx, "PUT", "/logs/2024-07-01", []byte(`{"dayStatus":"sick"}`)))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp, err = s.httpClient.Do(s.newRequest(ctx, "GET", "/backup", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	exported, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Contains(t, string(exported), `"dayStatus": "sick"`)

	// a rejected import does not touch the stored data
	resp, err = s.httpClient.Do(s.newRequest(ctx, "POST", "/backup", []byte(`[1, 2]`)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	for i := 0; i < testImportsPerMin-1; i++ {
		resp, err = s.httpClient.Do(s.newRequest(ctx, "POST", "/backup", exported))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NoError(t, resp.Body.Close())
	}

	resp, err = s.httpClient.Do(s.newRequest(ctx, "POST", "/backup", exported))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp, err = s.httpClient.Do(s.newRequest(ctx, "GET", "/logs/2024-07-01", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}
