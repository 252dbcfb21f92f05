package metrics

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type MockMetrics struct {
	mock.Mock
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{}
}

func (m *MockMetrics) Count(name string) {
	m.Called(name)
}

func (m *MockMetrics) Timing(name string, d time.Duration) {
	m.Called(name, d)
}
