package mocks

import (
	"context"

	"scoutquest/pkg/auth"

	"github.com/stretchr/testify/mock"
)

type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) Open(ctx context.Context, session *auth.Session) (string, error) {
	args := m.Called(ctx, session)
	return args.String(0), args.Error(1)
}

func (m *MockSessionManager) Close(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
