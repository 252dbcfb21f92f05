package file_test

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"webapp/internal/adapters/handlers/http/chi"
	"webapp/internal/adapters/handlers/http/chi/health"
	"webapp/internal/adapters/handlers/http/chi/v1/file"
	"webapp/internal/adapters/metrics"
	fileService "webapp/internal/core/service/file"
	healthService "webapp/internal/core/service/health"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestRouter(service *fileService.MockFileService) http.Handler {
	mockMetrics := metrics.NewMockMetrics()
	mockMetrics.On("Count", mock.Anything).Maybe()
	mockMetrics.On("Timing", mock.Anything, mock.Anything).Maybe()

	healthHandler := health.NewHandler(healthService.NewMockHealthService(), discardLogger)
	handler := file.NewFileHandlerV1(service, discardLogger)
	return chi.NewRouter(discardLogger, mockMetrics, healthHandler, handler, chi.Options{MaxUploadBytes: 1 << 10})
}

func newMultipartRequest(t *testing.T, field, fileName string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/file", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}
