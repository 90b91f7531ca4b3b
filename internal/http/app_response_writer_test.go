package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"code-time/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestAppResponseWriter_ErrorCode(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Equal(t, "", appWriter.ErrorCode())

	appWriter.SetServiceError(svcerrors.NewStoreError("AGG_9000", nil))
	assert.Equal(t, "AGG_9000", appWriter.ErrorCode())

	appWriter.SetServiceError(nil)
	assert.Equal(t, "", appWriter.ErrorCode())
}

func TestAppResponseWriter_StatusOrOK(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		write    func(w http.ResponseWriter)
		expected int
	}{
		{
			name:     "nothing written",
			write:    func(w http.ResponseWriter) {},
			expected: http.StatusOK,
		},
		{
			name:     "explicit status",
			write:    func(w http.ResponseWriter) { w.WriteHeader(http.StatusNoContent) },
			expected: http.StatusNoContent,
		},
		{
			name: "write after status keeps status",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte("bad"))
			},
			expected: http.StatusBadRequest,
		},
		{
			name:     "implicit status from write",
			write:    func(w http.ResponseWriter) { _, _ = w.Write([]byte("ok")) },
			expected: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			appWriter := newAppResponseWriter(rr, 1)
			tt.write(appWriter)

			assert.Equal(t, tt.expected, appWriter.StatusOrOK())
			assert.Equal(t, tt.expected, rr.Code)
		})
	}
}
