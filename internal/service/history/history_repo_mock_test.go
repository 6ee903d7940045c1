package history

import (
	"context"
	"sync"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	RecordFunc          func(ctx context.Context, event domain.StatusChangeEvent) (int64, error)
	ListByComplaintFunc func(ctx context.Context, complaintID int64) ([]domain.StatusHistoryEntry, error)

	calls struct {
		Record []struct {
			Ctx   context.Context
			Event domain.StatusChangeEvent
		}
		ListByComplaint []struct {
			Ctx         context.Context
			ComplaintID int64
		}
	}
	lockRecord          sync.RWMutex
	lockListByComplaint sync.RWMutex
}

func (mock *historyRepoMock) Record(ctx context.Context, event domain.StatusChangeEvent) (int64, error) {
	if mock.RecordFunc == nil {
		panic("historyRepoMock.RecordFunc: method is nil but historyRepo.Record was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Event domain.StatusChangeEvent
	}{Ctx: ctx, Event: event}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, event)
}

func (mock *historyRepoMock) RecordCalls() []struct {
	Ctx   context.Context
	Event domain.StatusChangeEvent
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}

func (mock *historyRepoMock) ListByComplaint(ctx context.Context, complaintID int64) ([]domain.StatusHistoryEntry, error) {
	if mock.ListByComplaintFunc == nil {
		panic("historyRepoMock.ListByComplaintFunc: method is nil but historyRepo.ListByComplaint was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ComplaintID int64
	}{Ctx: ctx, ComplaintID: complaintID}
	mock.lockListByComplaint.Lock()
	mock.calls.ListByComplaint = append(mock.calls.ListByComplaint, callInfo)
	mock.lockListByComplaint.Unlock()
	return mock.ListByComplaintFunc(ctx, complaintID)
}

func (mock *historyRepoMock) ListByComplaintCalls() []struct {
	Ctx         context.Context
	ComplaintID int64
} {
	mock.lockListByComplaint.RLock()
	calls := mock.calls.ListByComplaint
	mock.lockListByComplaint.RUnlock()
	return calls
}
