package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type TestHttpResponseWriter struct {
	HeaderMap  http.Header
	Body       []byte
	StatusCode int
}

func (w *TestHttpResponseWriter) Header() http.Header {
	return w.HeaderMap
}

func (w *TestHttpResponseWriter) Write(bytes []byte) (int, error) {
	w.Body = bytes
	return len(bytes), nil
}

func (w *TestHttpResponseWriter) WriteHeader(statusCode int) {
	w.StatusCode = statusCode
}

func TestWriteResponseBytes(t *testing.T) {
	w := &TestHttpResponseWriter{
		HeaderMap: make(http.Header),
	}

	testJson := `{"2024-01-05":{"date":"2024-01-05"}}`
	WriteResponseBytes(w, ContentType.JSON, []byte(testJson), http.StatusCreated)

	assert.Equal(t, http.StatusCreated, w.StatusCode)
	assert.Equal(t, ContentType.JSON, w.HeaderMap.Get("Content-Type"))
	assert.Equal(t, testJson, string(w.Body))
}

func TestWriteResponseBytesOK(t *testing.T) {
	w := &TestHttpResponseWriter{
		HeaderMap: make(http.Header),
	}

	WriteResponseBytesOK(w, ContentType.CSV, []byte("date,weight\n"))

	assert.Equal(t, http.StatusOK, w.StatusCode)
	assert.Equal(t, ContentType.CSV, w.HeaderMap.Get("Content-Type"))
	assert.Equal(t, "date,weight\n", string(w.Body))
}

func TestWriteTextResponseOK(t *testing.T) {
	w := &TestHttpResponseWriter{
		HeaderMap: make(http.Header),
	}

	WriteTextResponseOK(w, "deleted:2024-03-01")

	assert.Equal(t, http.StatusOK, w.StatusCode)
	assert.Equal(t, ContentType.Text, w.HeaderMap.Get("Content-Type"))
	assert.Equal(t, "deleted:2024-03-01", string(w.Body))
}

func TestWriteJSONResponseOK(t *testing.T) {
	w := &TestHttpResponseWriter{
		HeaderMap: make(http.Header),
	}

	WriteJSONResponseOK(w, `{}`)

	assert.Equal(t, http.StatusOK, w.StatusCode)
	assert.Equal(t, ContentType.JSON, w.HeaderMap.Get("Content-Type"))
	assert.Equal(t, `{}`, string(w.Body))
}

func TestWriteAttachment(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteAttachment(rr, ContentType.JSON, "fitcal_backup_2024-05-01.json", []byte(`{}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `attachment; filename="fitcal_backup_2024-05-01.json"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, `{}`, rr.Body.String())
}
