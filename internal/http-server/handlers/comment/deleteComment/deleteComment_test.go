package deleteComment

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"saaf/internal/http-server/handlers/comment/deleteComment/mocks"
	"saaf/internal/lib/logger/handlers/slogdiscard"
	"saaf/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteCommentHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		commentID      string
		requestBody    string
		mockSetup      func(m *mocks.CommentDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Author deletes comment",
			commentID:   "12",
			requestBody: `{"user_id": "bob"}`,
			mockSetup: func(m *mocks.CommentDeleter) {
				m.On("DeleteComment", mock.Anything, 12, "bob").Return(5, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","post_id":5}`,
		},
		{
			name:        "Not the author",
			commentID:   "12",
			requestBody: `{"user_id": "eve"}`,
			mockSetup: func(m *mocks.CommentDeleter) {
				m.On("DeleteComment", mock.Anything, 12, "eve").Return(0, storage.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"you are not allowed to delete this comment"}`,
		},
		{
			name:        "Comment not found",
			commentID:   "13",
			requestBody: `{"user_id": "bob"}`,
			mockSetup: func(m *mocks.CommentDeleter) {
				m.On("DeleteComment", mock.Anything, 13, "bob").Return(0, storage.ErrCommentNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"comment not found"}`,
		},
		{
			name:        "Storage failure",
			commentID:   "12",
			requestBody: `{"user_id": "bob"}`,
			mockSetup: func(m *mocks.CommentDeleter) {
				m.On("DeleteComment", mock.Anything, 12, "bob").Return(0, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete comment"}`,
		},
		{
			name:           "Missing user_id",
			commentID:      "12",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.CommentDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field UserId is a required field"}`,
		},
		{
			name:           "Invalid comment id",
			commentID:      "1.5",
			requestBody:    `{"user_id": "bob"}`,
			mockSetup:      func(m *mocks.CommentDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid comment id format"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewCommentDeleter(t)
			tc.mockSetup(mockDeleter)

			router := chi.NewRouter()
			router.Delete("/comments/{id}", New(logger, mockDeleter))

			req, err := http.NewRequest(http.MethodDelete, "/comments/"+tc.commentID, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
