package createPost

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"saaf/internal/http-server/handlers/post/createPost/mocks"
	"saaf/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePostHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.PostCreator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"user_id": "alice", "title": "Hello", "content": "First post"}`,
			mockSetup: func(m *mocks.PostCreator) {
				m.On("CreatePost", mock.Anything, "alice", "Hello", "First post").Return(42, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","post_id":42}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{"title":`,
			mockSetup:      func(m *mocks.PostCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing title",
			requestBody:    `{"user_id": "alice", "content": "First post"}`,
			mockSetup:      func(m *mocks.PostCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Title is a required field"}`,
		},
		{
			name:           "Title too long",
			requestBody:    `{"user_id": "alice", "title": "` + strings.Repeat("t", 101) + `", "content": "x"}`,
			mockSetup:      func(m *mocks.PostCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Title must be at most 100 characters"}`,
		},
		{
			name:           "Missing everything",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.PostCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field UserId is a required field, field Title is a required field, field Content is a required field"}`,
		},
		{
			name:        "Storage failure",
			requestBody: `{"user_id": "alice", "title": "Hello", "content": "First post"}`,
			mockSetup: func(m *mocks.PostCreator) {
				m.On("CreatePost", mock.Anything, "alice", "Hello", "First post").Return(0, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to add post"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewPostCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest(http.MethodPost, "/posts", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
