package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

var _ historyService = &historyServiceMock{}

type historyServiceMock struct {
	ListFunc func(ctx context.Context, complaintID int64) ([]domain.StatusHistoryEntry, error)

	calls struct {
		List []struct {
			Ctx         context.Context
			ComplaintID int64
		}
	}
	lockList sync.RWMutex
}

func (mock *historyServiceMock) List(ctx context.Context, complaintID int64) ([]domain.StatusHistoryEntry, error) {
	if mock.ListFunc == nil {
		panic("historyServiceMock.ListFunc: method is nil but historyService.List was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ComplaintID int64
	}{Ctx: ctx, ComplaintID: complaintID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, complaintID)
}

func (mock *historyServiceMock) ListCalls() []struct {
	Ctx         context.Context
	ComplaintID int64
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
