package cancelEvent

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"saaf/internal/http-server/handlers/event/cancelEvent/mocks"
	"saaf/internal/lib/logger/handlers/slogdiscard"
	"saaf/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		mockSetup      func(m *mocks.ParticipationCanceller)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			eventID:     "3",
			requestBody: `{"user_id": "alice"}`,
			mockSetup: func(m *mocks.ParticipationCanceller) {
				m.On("CancelParticipation", mock.Anything, 3, "alice").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Invalid event ID format",
			eventID:        "abc",
			requestBody:    `{"user_id": "alice"}`,
			mockSetup:      func(m *mocks.ParticipationCanceller) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:           "Invalid JSON",
			eventID:        "3",
			requestBody:    `{"user_id":`,
			mockSetup:      func(m *mocks.ParticipationCanceller) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing user_id",
			eventID:        "3",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.ParticipationCanceller) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field UserId is a required field"}`,
		},
		{
			name:        "Event not found",
			eventID:     "3",
			requestBody: `{"user_id": "alice"}`,
			mockSetup: func(m *mocks.ParticipationCanceller) {
				m.On("CancelParticipation", mock.Anything, 3, "alice").Return(storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:        "Past event",
			eventID:     "3",
			requestBody: `{"user_id": "alice"}`,
			mockSetup: func(m *mocks.ParticipationCanceller) {
				m.On("CancelParticipation", mock.Anything, 3, "alice").
					Return(fmt.Errorf("storage.postgres.CancelParticipation: %w", storage.ErrEventInPast))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"you can't modify participation for past events"}`,
		},
		{
			name:        "Internal server error",
			eventID:     "3",
			requestBody: `{"user_id": "alice"}`,
			mockSetup: func(m *mocks.ParticipationCanceller) {
				m.On("CancelParticipation", mock.Anything, 3, "alice").Return(errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to cancel participation"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCanceller := mocks.NewParticipationCanceller(t)
			tc.mockSetup(mockCanceller)

			router := chi.NewRouter()
			router.Post("/events/{id}/cancel", New(logger, mockCanceller))

			req, err := http.NewRequest(http.MethodPost, "/events/"+tc.eventID+"/cancel", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

func TestHandlerWithoutChiContext(t *testing.T) {
	t.Parallel()

	mockCanceller := mocks.NewParticipationCanceller(t)
	handler := New(slogdiscard.NewDiscardLogger(), mockCanceller)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"user_id": "alice"}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"event id is required"}`, rr.Body.String())
}
