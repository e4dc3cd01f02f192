package repository

import (
	"context"
	"elevatorops-console/models"
	"elevatorops-console/utils/logger"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsStatisticsShapes(t *testing.T) {
	for _, body := range []string{
		`{"success":true,"data":{"statistics":{"totalRequests":12,"pendingRequests":3}}}`,
		`{"success":true,"data":{"totalRequests":12,"pendingRequests":3}}`,
		`{"totalRequests":12,"pendingRequests":3}`,
	} {
		gw := new(MockGateway)
		gw.On("Send", mock.Anything, http.MethodGet, "/dashboard/statistics", mock.Anything).Return(raw(200, body), nil)
		repo := NewAnalyticsRepository(gw, logger.NewNopLogger())

		stats, err := repo.Statistics(context.Background())

		require.NoError(t, err, body)
		assert.Equal(t, 12, stats.TotalRequests, body)
		assert.Equal(t, 3, stats.PendingRequests, body)
	}
}

func TestAnalyticsSeries(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Send", mock.Anything, http.MethodGet, "/dashboard/requests-by-status", mock.Anything).
		Return(raw(200, `{"data":[{"status":"PENDING","count":3},{"status":"COMPLETED","count":9}]}`), nil)
	gw.On("Send", mock.Anything, http.MethodGet, "/dashboard/top-clients", mock.Anything).
		Return(raw(200, `{"data":{"clients":[{"clientId":4,"name":"Acme","requestCount":5}]}}`), nil)
	gw.On("Send", mock.Anything, http.MethodGet, "/dashboard/elevator-health", mock.Anything).
		Return(nil, errors.New("timeout"))
	repo := NewAnalyticsRepository(gw, logger.NewNopLogger())

	byStatus, err := repo.RequestsByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.StatusCount{{Status: models.RequestStatusPending, Count: 3}, {Status: models.RequestStatusCompleted, Count: 9}}, byStatus)

	top, err := repo.TopClients(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, models.ID("4"), top[0].ClientID)

	_, err = repo.ElevatorHealth(context.Background())
	assert.Equal(t, models.ErrorKindTransport, models.KindOf(err))
}
