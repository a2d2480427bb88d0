package mailtest

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockService реализует интерфейс mailtest.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) SendTest() error {
	args := m.Called()
	return args.Error(0)
}

func TestMailtestHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "письмо отправлено",
			setupMock: func(m *MockService) {
				m.On("SendTest").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Email sent!",
		},
		{
			name: "отправка не удалась",
			setupMock: func(m *MockService) {
				m.On("SendTest").Return(errors.New("smtp down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Email failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/testEmail", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
