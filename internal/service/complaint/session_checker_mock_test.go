package complaint

import (
	"context"
	"sync"
)

var _ sessionChecker = &sessionCheckerMock{}

type sessionCheckerMock struct {
	IsSessionActiveFunc func(ctx context.Context, username string) (bool, error)

	calls struct {
		IsSessionActive []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockIsSessionActive sync.RWMutex
}

func (mock *sessionCheckerMock) IsSessionActive(ctx context.Context, username string) (bool, error) {
	if mock.IsSessionActiveFunc == nil {
		panic("sessionCheckerMock.IsSessionActiveFunc: method is nil but sessionChecker.IsSessionActive was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockIsSessionActive.Lock()
	mock.calls.IsSessionActive = append(mock.calls.IsSessionActive, callInfo)
	mock.lockIsSessionActive.Unlock()
	return mock.IsSessionActiveFunc(ctx, username)
}

func (mock *sessionCheckerMock) IsSessionActiveCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockIsSessionActive.RLock()
	calls := mock.calls.IsSessionActive
	mock.lockIsSessionActive.RUnlock()
	return calls
}
