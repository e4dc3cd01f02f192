package repository

import (
	"context"
	"elevatorops-console/dal"
	"elevatorops-console/models"
	"elevatorops-console/utils/logger"
	"encoding/json"
	"net/http"
)

// AnalyticsRepository reads the dashboard endpoints
type AnalyticsRepository struct {
	gateway dal.Gateway
	logger  logger.Logger
}

func NewAnalyticsRepository(gateway dal.Gateway, log logger.Logger) *AnalyticsRepository {
	return &AnalyticsRepository{
		gateway: gateway,
		logger:  log.WithFields(map[string]interface{}{"collection": "dashboard"}),
	}
}

// Statistics reads the primary summary from data.statistics, data or the body
func (r *AnalyticsRepository) Statistics(ctx context.Context) (*models.Statistics, error) {
	env, err := r.gateway.Send(ctx, http.MethodGet, "/dashboard/statistics", dal.RequestOptions{})
	if err != nil {
		r.logger.Errorf("Failed to load statistics: %v", err)
		return nil, normalizeFailure(err)
	}
	for _, p := range []string{"data.statistics", "data", "statistics", "@this"} {
		res := env.Get(p)
		if !res.IsObject() {
			continue
		}
		var stats models.Statistics
		if err := json.Unmarshal([]byte(res.Raw), &stats); err == nil {
			return &stats, nil
		}
	}
	r.logger.Warn("Unrecognized statistics shape, using empty statistics")
	return &models.Statistics{}, nil
}

func (r *AnalyticsRepository) RequestsByStatus(ctx context.Context) ([]models.StatusCount, error) {
	return fetchSeries[models.StatusCount](ctx, r, "/dashboard/requests-by-status", "requestsByStatus")
}

func (r *AnalyticsRepository) RequestsByPriority(ctx context.Context) ([]models.PriorityCount, error) {
	return fetchSeries[models.PriorityCount](ctx, r, "/dashboard/requests-by-priority", "requestsByPriority")
}

func (r *AnalyticsRepository) TopClients(ctx context.Context) ([]models.TopClient, error) {
	return fetchSeries[models.TopClient](ctx, r, "/dashboard/top-clients", "clients")
}

func (r *AnalyticsRepository) ElevatorHealth(ctx context.Context) ([]models.ElevatorHealth, error) {
	return fetchSeries[models.ElevatorHealth](ctx, r, "/dashboard/elevator-health", "elevators")
}

func fetchSeries[T any](ctx context.Context, r *AnalyticsRepository, path, key string) ([]T, error) {
	env, err := r.gateway.Send(ctx, http.MethodGet, path, dal.RequestOptions{})
	if err != nil {
		r.logger.Errorf("Failed to load %s: %v", path, err)
		return nil, normalizeFailure(err)
	}
	page, matched := NormalizeList[T](env, key)
	if !matched {
		r.logger.Warnf("Unrecognized shape for %s, treating as empty", path)
	}
	return page.Items, nil
}
