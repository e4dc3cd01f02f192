package repository

import (
	"context"
	"elevatorops-console/dal"

	"github.com/stretchr/testify/mock"
)

// MockGateway implements dal.Gateway for testing
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Send(ctx context.Context, method, path string, opts dal.RequestOptions) (*dal.Envelope, error) {
	args := m.Called(ctx, method, path, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dal.Envelope), args.Error(1)
}

func raw(status int, body string) *dal.Envelope {
	return dal.NewEnvelope(status, []byte(body))
}
