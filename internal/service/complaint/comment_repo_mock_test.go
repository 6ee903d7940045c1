package complaint

import (
	"context"
	"sync"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc          func(ctx context.Context, complaintID int64, text string) (int64, error)
	ListByComplaintFunc func(ctx context.Context, complaintID int64) ([]domain.Comment, error)

	calls struct {
		Create []struct {
			Ctx         context.Context
			ComplaintID int64
			Text        string
		}
		ListByComplaint []struct {
			Ctx         context.Context
			ComplaintID int64
		}
	}
	lockCreate          sync.RWMutex
	lockListByComplaint sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, complaintID int64, text string) (int64, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ComplaintID int64
		Text        string
	}{Ctx: ctx, ComplaintID: complaintID, Text: text}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, complaintID, text)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx         context.Context
	ComplaintID int64
	Text        string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentRepoMock) ListByComplaint(ctx context.Context, complaintID int64) ([]domain.Comment, error) {
	if mock.ListByComplaintFunc == nil {
		panic("commentRepoMock.ListByComplaintFunc: method is nil but commentRepo.ListByComplaint was just called")
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

func (mock *commentRepoMock) ListByComplaintCalls() []struct {
	Ctx         context.Context
	ComplaintID int64
} {
	mock.lockListByComplaint.RLock()
	calls := mock.calls.ListByComplaint
	mock.lockListByComplaint.RUnlock()
	return calls
}
