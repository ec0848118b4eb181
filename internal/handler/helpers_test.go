package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/morrowland/archetype-report/internal/archetype"
	"github.com/morrowland/archetype-report/internal/report"
)

// Mock objects

// MockStore mocks the accesscode.Store interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Generate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockStore) Redeem(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// MockGateway mocks the payment.Gateway interface
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateSession(ctx context.Context, traitCode string) (string, error) {
	args := m.Called(ctx, traitCode)
	return args.String(0), args.Error(1)
}

const wandererText = "You drift between worlds of thought.\nOthers find comfort in your wandering."

func newTestReportService(t *testing.T) *report.Service {
	t.Helper()
	narratives := archetype.Narratives{
		ByCode: map[string]string{
			"High-Low-Medium-High-Low": wandererText,
		},
		ByName: map[string]string{
			"Starlight Wanderer": wandererText,
		},
	}
	registry := archetype.Registry{
		"High-Low-Medium-High-Low": "Starlight Wanderer",
	}
	return report.NewService(narratives, registry)
}
