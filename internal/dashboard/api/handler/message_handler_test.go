package handler

import (
	"VCS_Sandbox_Dashboard/internal/dashboard/backend"
	mockbackend "VCS_Sandbox_Dashboard/internal/dashboard/mocks/backend"
	mockmonitor "VCS_Sandbox_Dashboard/internal/dashboard/mocks/monitor"
	"VCS_Sandbox_Dashboard/internal/dashboard/monitor"
	"VCS_Sandbox_Dashboard/pkg/access"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMessageHandler_SendMessage(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(mockMessages *mockbackend.MockMessageClient)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"message":"hello queue"}`,
			setupMocks: func(mockMessages *mockbackend.MockMessageClient) {
				mockMessages.EXPECT().Send(gomock.Any(), "hello queue").Return(backend.Response{StatusCode: 200, Body: []byte("Message sent: hello queue")}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status_code":200,"data":"Message sent: hello queue"}`,
		},
		{
			name:           "Error Empty message",
			body:           `{"message":""}`,
			setupMocks:     func(mockMessages *mockbackend.MockMessageClient) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"The Message field is required"}`,
		},
		{
			name:           "Error Invalid JSON body",
			body:           `message`,
			setupMocks:     func(mockMessages *mockbackend.MockMessageClient) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"Invalid request body"}`,
		},
		{
			name: "Error Queue unavailable",
			body: `{"message":"hello queue"}`,
			setupMocks: func(mockMessages *mockbackend.MockMessageClient) {
				mockMessages.EXPECT().Send(gomock.Any(), "hello queue").Return(backend.Response{}, access.NewResponseError(http.StatusInternalServerError, "Kafka is unavailable"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"message":"error 500: Kafka is unavailable"}`,
		},
		{
			name: "Error Backend unreachable",
			body: `{"message":"hello queue"}`,
			setupMocks: func(mockMessages *mockbackend.MockMessageClient) {
				mockMessages.EXPECT().Send(gomock.Any(), "hello queue").Return(backend.Response{}, errors.New("request build failed"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"message":"request error: request build failed"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockMessages := mockbackend.NewMockMessageClient(ctrl)
			tc.setupMocks(mockMessages)

			w, c := setupTestContext(t, http.MethodPost, "/api/messages", strings.NewReader(tc.body))
			NewMessageHandler(zap.NewNop(), mockMessages, nil).SendMessage()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestMessageHandler_GetFeed(t *testing.T) {
	t.Run("Success Recent messages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockFeed := mockmonitor.NewMockFeed(ctrl)
		mockFeed.EXPECT().Recent().Return([]monitor.FeedMessage{
			{Type: monitor.MessageTypeTest, Preview: "Test message", Length: 12, Partition: 0, Offset: 7, ReceivedAt: time.Now()},
		})

		w, c := setupTestContext(t, http.MethodGet, "/api/messages/feed", nil)
		NewMessageHandler(zap.NewNop(), nil, mockFeed).GetFeed()(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"enabled":true`)
		assert.Contains(t, w.Body.String(), `"type":"TEST","preview":"Test message","length":12`)
	})
	t.Run("Success Feed disabled", func(t *testing.T) {
		w, c := setupTestContext(t, http.MethodGet, "/api/messages/feed", nil)
		NewMessageHandler(zap.NewNop(), nil, nil).GetFeed()(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"enabled":false,"messages":[]}`, w.Body.String())
	})
}
