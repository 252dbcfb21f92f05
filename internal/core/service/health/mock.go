package health

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockHealthService is a mock implementation of HealthService
type MockHealthService struct {
	mock.Mock
}

// NewMockHealthService creates a new MockHealthService
func NewMockHealthService() *MockHealthService {
	return &MockHealthService{}
}

func (m *MockHealthService) Check(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
