package enhanceStory

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"saaf/internal/http-server/handlers/story/enhanceStory/mocks"
	"saaf/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnhanceStoryHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.StoryEnhancer)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Enhanced",
			requestBody: `{"content": "we went to beach it was nice"}`,
			mockSetup: func(m *mocks.StoryEnhancer) {
				m.On("Enhance", mock.Anything, "we went to beach it was nice").
					Return("We went to the beach, and it was lovely.", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","enhanced":"We went to the beach, and it was lovely."}`,
		},
		{
			name:        "Model error falls back to original",
			requestBody: `{"content": "draft"}`,
			mockSetup: func(m *mocks.StoryEnhancer) {
				m.On("Enhance", mock.Anything, "draft").Return("", errors.New("quota exceeded"))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","enhanced":"draft"}`,
		},
		{
			name:        "Empty model output falls back to original",
			requestBody: `{"content": "draft"}`,
			mockSetup: func(m *mocks.StoryEnhancer) {
				m.On("Enhance", mock.Anything, "draft").Return("  ", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","enhanced":"draft"}`,
		},
		{
			name:           "Blank content skips the model",
			requestBody:    `{"content": "   "}`,
			mockSetup:      func(m *mocks.StoryEnhancer) {},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","enhanced":"   "}`,
		},
		{
			name:           "Missing content skips the model",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.StoryEnhancer) {},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","enhanced":""}`,
		},
		{
			name:           "Content too long",
			requestBody:    `{"content": "` + strings.Repeat("a", 20001) + `"}`,
			mockSetup:      func(m *mocks.StoryEnhancer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Content must be at most 20000 characters"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `content=draft`,
			mockSetup:      func(m *mocks.StoryEnhancer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockEnhancer := mocks.NewStoryEnhancer(t)
			tc.mockSetup(mockEnhancer)

			req, err := http.NewRequest(http.MethodPost, "/enhance_story", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			New(logger, mockEnhancer).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
