package handler

import (
	mockmonitor "VCS_Sandbox_Dashboard/internal/dashboard/mocks/monitor"
	"VCS_Sandbox_Dashboard/internal/dashboard/monitor"
	"VCS_Sandbox_Dashboard/pkg/access"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestStatusHandler_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMonitor := mockmonitor.NewMockMonitor(ctrl)
	snapshot := monitor.Snapshot{
		Services: []monitor.ServiceStatus{
			{Name: "Service One", Status: access.StatusOnline, Response: "one"},
			{Name: "Service Two", Status: access.StatusOffline},
		},
		Stats:       access.AggregateStatus{Total: 2, Online: 1, Offline: 1, HealthPercentage: 50},
		Uptime:      "3m",
		AutoRefresh: true,
	}
	mockMonitor.EXPECT().Latest().Return(snapshot)

	w, c := setupTestContext(t, http.MethodGet, "/api/status", nil)
	NewStatusHandler(zap.NewNop(), mockMonitor).GetStatus()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Service One","status":"online","response":"one"`)
	assert.Contains(t, w.Body.String(), `"stats":{"total_services":2,"online_services":1,"offline_services":1,"health_percentage":50}`)
	assert.Contains(t, w.Body.String(), `"uptime":"3m"`)
	assert.Contains(t, w.Body.String(), `"auto_refresh":true`)
}

func TestStatusHandler_RefreshStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMonitor := mockmonitor.NewMockMonitor(ctrl)
	mockMonitor.EXPECT().Refresh(gomock.Any()).Return(monitor.Snapshot{Uptime: "1m"})

	w, c := setupTestContext(t, http.MethodPost, "/api/status/refresh", nil)
	NewStatusHandler(zap.NewNop(), mockMonitor).RefreshStatus()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"uptime":"1m"`)
}

func TestStatusHandler_SetAutoRefresh(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(mockMonitor *mockmonitor.MockMonitor)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Disable",
			body: `{"enabled": false}`,
			setupMocks: func(mockMonitor *mockmonitor.MockMonitor) {
				mockMonitor.EXPECT().SetAutoRefresh(false).Return(nil)
				mockMonitor.EXPECT().Latest().Return(monitor.Snapshot{AutoRefresh: false})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"auto_refresh":false`,
		},
		{
			name: "Success Enable",
			body: `{"enabled": true}`,
			setupMocks: func(mockMonitor *mockmonitor.MockMonitor) {
				mockMonitor.EXPECT().SetAutoRefresh(true).Return(nil)
				mockMonitor.EXPECT().Latest().Return(monitor.Snapshot{AutoRefresh: true})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"auto_refresh":true`,
		},
		{
			name:           "Error Missing enabled",
			body:           `{}`,
			setupMocks:     func(mockMonitor *mockmonitor.MockMonitor) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Enabled field is required"`,
		},
		{
			name:           "Error Invalid JSON body",
			body:           `{"enabled": `,
			setupMocks:     func(mockMonitor *mockmonitor.MockMonitor) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid request body"`,
		},
		{
			name: "Error Registry failure",
			body: `{"enabled": true}`,
			setupMocks: func(mockMonitor *mockmonitor.MockMonitor) {
				mockMonitor.EXPECT().SetAutoRefresh(true).Return(errors.New("invalid schedule"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal Server Error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockMonitor := mockmonitor.NewMockMonitor(ctrl)
			tc.setupMocks(mockMonitor)

			w, c := setupTestContext(t, http.MethodPut, "/api/status/auto-refresh", strings.NewReader(tc.body))
			NewStatusHandler(zap.NewNop(), mockMonitor).SetAutoRefresh()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestStatusHandler_GetSystemStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMonitor := mockmonitor.NewMockMonitor(ctrl)
	mockMonitor.EXPECT().SystemStats(gomock.Any()).Return(monitor.SystemStats{
		AggregateStatus: access.AggregateStatus{Total: 3, Online: 2, Offline: 1, HealthPercentage: 67},
		Services: []access.Outcome{
			{Service: "Service Two", Status: access.StatusOffline, Data: access.NetworkUnreachableMessage},
		},
	})

	w, c := setupTestContext(t, http.MethodGet, "/api/system/stats", nil)
	NewStatusHandler(zap.NewNop(), mockMonitor).GetSystemStats()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_services":3`)
	assert.Contains(t, w.Body.String(), `"health_percentage":67`)
	assert.Contains(t, w.Body.String(), `"data":"network error: server is not responding"`)
}

func TestStatusHandler_Liveness(t *testing.T) {
	w, c := setupTestContext(t, http.MethodGet, "/healthz", nil)
	NewStatusHandler(zap.NewNop(), nil).Liveness()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())
}
