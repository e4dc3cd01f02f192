package services

import (
	"context"
	"elevatorops-console/dal"
	"elevatorops-console/infrastructure"
	"elevatorops-console/models"
	"elevatorops-console/repository"
	"elevatorops-console/utils/logger"
	"elevatorops-console/view"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// backendStub serves one maintenance request whose status follows the writes it accepts
type backendStub struct {
	mu     sync.Mutex
	status models.RequestStatus
	calls  []string
}

func (b *backendStub) Send(_ context.Context, method, path string, _ dal.RequestOptions) (*dal.Envelope, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, method+" "+path)

	switch {
	case method == http.MethodGet && path == "/requests":
		body := fmt.Sprintf(`{"success":true,"data":{"requests":[{"id":1,"reference_number":"A-1","status":%q}]}}`, b.status)
		return dal.NewEnvelope(http.StatusOK, []byte(body)), nil
	case method == http.MethodPatch && path == "/requests/1/assign":
		b.status = models.RequestStatusAssigned
		return dal.NewEnvelope(http.StatusOK, []byte(`{"success":true}`)), nil
	}
	return dal.NewEnvelope(http.StatusNotFound, []byte(`{"success":false,"error":"not found"}`)), nil
}

func (b *backendStub) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

type LifecycleViewsTestSuite struct {
	suite.Suite
	backend  *backendStub
	pending  *view.Engine[models.MaintenanceRequest]
	registry *view.Registry
	service  *RequestLifecycleService
	ctx      context.Context
}

func (suite *LifecycleViewsTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.backend = &backendStub{status: models.RequestStatusPending}
	repo := repository.NewRepository(suite.backend, logger.NewNopLogger()).GetRequestRepository()

	suite.pending = view.NewEngine(view.RequestScreen(repo, 9, 0), logger.NewNopLogger())
	suite.pending.SetStatusFilter(string(models.RequestStatusPending))
	suite.registry = view.NewRegistry()
	suite.registry.Register(suite.pending)

	suite.service = NewRequestLifecycleService(repo, suite.registry, infrastructure.NopNotifier{}, logger.NewNopLogger())

	require.NoError(suite.T(), suite.pending.Refresh(suite.ctx, nil))
	require.Equal(suite.T(), 1, suite.pending.Projection().Total)
}

func TestLifecycleViewsTestSuite(t *testing.T) {
	suite.Run(t, new(LifecycleViewsTestSuite))
}

func (suite *LifecycleViewsTestSuite) TestInvalidTransitionOnScreenSendsNothing() {
	before := suite.backend.callCount()

	_, err := suite.service.Transition(suite.ctx, "1", models.RequestStatusCompleted, models.Actor{ID: "operator-1"})

	require.Error(suite.T(), err)
	assert.Equal(suite.T(), models.ErrorKindLocalGuard, models.KindOf(err))
	assert.ErrorIs(suite.T(), err, models.ErrInvalidTransition)
	assert.Equal(suite.T(), before, suite.backend.callCount())
}

func (suite *LifecycleViewsTestSuite) TestAssignedRequestLeavesPendingScreen() {
	updated, err := suite.service.Assign(suite.ctx, "1", "7", models.Actor{ID: "operator-1"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RequestStatusAssigned, updated.Status)
	projection := suite.pending.Projection()
	assert.Equal(suite.T(), 0, projection.Total)
	assert.Empty(suite.T(), projection.Items)
	assert.NoError(suite.T(), suite.pending.Err())
}
