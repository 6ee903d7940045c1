package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/complaints-backend/internal/domain"
	"github.com/heartmarshall/complaints-backend/internal/service/complaint"
)

var _ complaintService = &complaintServiceMock{}

type complaintServiceMock struct {
	CreateComplaintFunc     func(ctx context.Context, input complaint.CreateComplaintInput) (int64, error)
	UpdateStatusFunc        func(ctx context.Context, input complaint.UpdateStatusInput) (*domain.Complaint, error)
	DeleteComplaintFunc     func(ctx context.Context, input complaint.DeleteComplaintInput) error
	AddCommentFunc          func(ctx context.Context, input complaint.AddCommentInput) (int64, error)
	GetCommentsFunc         func(ctx context.Context, complaintID string) ([]domain.Comment, error)
	GetComplaintDetailsFunc func(ctx context.Context, complaintID string) (*complaint.ComplaintDetails, error)
	ListComplaintsFunc      func(ctx context.Context) ([]domain.Complaint, error)
	ListEntitiesFunc        func(ctx context.Context) ([]domain.PublicEntity, error)
	GetStatsFunc            func(ctx context.Context) (*domain.ComplaintStats, error)

	calls struct {
		CreateComplaint []struct {
			Ctx   context.Context
			Input complaint.CreateComplaintInput
		}
		UpdateStatus []struct {
			Ctx   context.Context
			Input complaint.UpdateStatusInput
		}
		DeleteComplaint []struct {
			Ctx   context.Context
			Input complaint.DeleteComplaintInput
		}
		AddComment []struct {
			Ctx   context.Context
			Input complaint.AddCommentInput
		}
		GetComments []struct {
			Ctx         context.Context
			ComplaintID string
		}
		GetComplaintDetails []struct {
			Ctx         context.Context
			ComplaintID string
		}
		ListComplaints []struct {
			Ctx context.Context
		}
		ListEntities []struct {
			Ctx context.Context
		}
		GetStats []struct {
			Ctx context.Context
		}
	}
	lockCreateComplaint     sync.RWMutex
	lockUpdateStatus        sync.RWMutex
	lockDeleteComplaint     sync.RWMutex
	lockAddComment          sync.RWMutex
	lockGetComments         sync.RWMutex
	lockGetComplaintDetails sync.RWMutex
	lockListComplaints      sync.RWMutex
	lockListEntities        sync.RWMutex
	lockGetStats            sync.RWMutex
}

func (mock *complaintServiceMock) CreateComplaint(ctx context.Context, input complaint.CreateComplaintInput) (int64, error) {
	if mock.CreateComplaintFunc == nil {
		panic("complaintServiceMock.CreateComplaintFunc: method is nil but complaintService.CreateComplaint was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input complaint.CreateComplaintInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateComplaint.Lock()
	mock.calls.CreateComplaint = append(mock.calls.CreateComplaint, callInfo)
	mock.lockCreateComplaint.Unlock()
	return mock.CreateComplaintFunc(ctx, input)
}

func (mock *complaintServiceMock) CreateComplaintCalls() []struct {
	Ctx   context.Context
	Input complaint.CreateComplaintInput
} {
	mock.lockCreateComplaint.RLock()
	calls := mock.calls.CreateComplaint
	mock.lockCreateComplaint.RUnlock()
	return calls
}

func (mock *complaintServiceMock) UpdateStatus(ctx context.Context, input complaint.UpdateStatusInput) (*domain.Complaint, error) {
	if mock.UpdateStatusFunc == nil {
		panic("complaintServiceMock.UpdateStatusFunc: method is nil but complaintService.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input complaint.UpdateStatusInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, input)
}

func (mock *complaintServiceMock) UpdateStatusCalls() []struct {
	Ctx   context.Context
	Input complaint.UpdateStatusInput
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *complaintServiceMock) DeleteComplaint(ctx context.Context, input complaint.DeleteComplaintInput) error {
	if mock.DeleteComplaintFunc == nil {
		panic("complaintServiceMock.DeleteComplaintFunc: method is nil but complaintService.DeleteComplaint was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input complaint.DeleteComplaintInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteComplaint.Lock()
	mock.calls.DeleteComplaint = append(mock.calls.DeleteComplaint, callInfo)
	mock.lockDeleteComplaint.Unlock()
	return mock.DeleteComplaintFunc(ctx, input)
}

func (mock *complaintServiceMock) DeleteComplaintCalls() []struct {
	Ctx   context.Context
	Input complaint.DeleteComplaintInput
} {
	mock.lockDeleteComplaint.RLock()
	calls := mock.calls.DeleteComplaint
	mock.lockDeleteComplaint.RUnlock()
	return calls
}

func (mock *complaintServiceMock) AddComment(ctx context.Context, input complaint.AddCommentInput) (int64, error) {
	if mock.AddCommentFunc == nil {
		panic("complaintServiceMock.AddCommentFunc: method is nil but complaintService.AddComment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input complaint.AddCommentInput
	}{Ctx: ctx, Input: input}
	mock.lockAddComment.Lock()
	mock.calls.AddComment = append(mock.calls.AddComment, callInfo)
	mock.lockAddComment.Unlock()
	return mock.AddCommentFunc(ctx, input)
}

func (mock *complaintServiceMock) AddCommentCalls() []struct {
	Ctx   context.Context
	Input complaint.AddCommentInput
} {
	mock.lockAddComment.RLock()
	calls := mock.calls.AddComment
	mock.lockAddComment.RUnlock()
	return calls
}

func (mock *complaintServiceMock) GetComments(ctx context.Context, complaintID string) ([]domain.Comment, error) {
	if mock.GetCommentsFunc == nil {
		panic("complaintServiceMock.GetCommentsFunc: method is nil but complaintService.GetComments was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ComplaintID string
	}{Ctx: ctx, ComplaintID: complaintID}
	mock.lockGetComments.Lock()
	mock.calls.GetComments = append(mock.calls.GetComments, callInfo)
	mock.lockGetComments.Unlock()
	return mock.GetCommentsFunc(ctx, complaintID)
}

func (mock *complaintServiceMock) GetCommentsCalls() []struct {
	Ctx         context.Context
	ComplaintID string
} {
	mock.lockGetComments.RLock()
	calls := mock.calls.GetComments
	mock.lockGetComments.RUnlock()
	return calls
}

func (mock *complaintServiceMock) GetComplaintDetails(ctx context.Context, complaintID string) (*complaint.ComplaintDetails, error) {
	if mock.GetComplaintDetailsFunc == nil {
		panic("complaintServiceMock.GetComplaintDetailsFunc: method is nil but complaintService.GetComplaintDetails was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ComplaintID string
	}{Ctx: ctx, ComplaintID: complaintID}
	mock.lockGetComplaintDetails.Lock()
	mock.calls.GetComplaintDetails = append(mock.calls.GetComplaintDetails, callInfo)
	mock.lockGetComplaintDetails.Unlock()
	return mock.GetComplaintDetailsFunc(ctx, complaintID)
}

func (mock *complaintServiceMock) GetComplaintDetailsCalls() []struct {
	Ctx         context.Context
	ComplaintID string
} {
	mock.lockGetComplaintDetails.RLock()
	calls := mock.calls.GetComplaintDetails
	mock.lockGetComplaintDetails.RUnlock()
	return calls
}

func (mock *complaintServiceMock) ListComplaints(ctx context.Context) ([]domain.Complaint, error) {
	if mock.ListComplaintsFunc == nil {
		panic("complaintServiceMock.ListComplaintsFunc: method is nil but complaintService.ListComplaints was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListComplaints.Lock()
	mock.calls.ListComplaints = append(mock.calls.ListComplaints, callInfo)
	mock.lockListComplaints.Unlock()
	return mock.ListComplaintsFunc(ctx)
}

func (mock *complaintServiceMock) ListComplaintsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListComplaints.RLock()
	calls := mock.calls.ListComplaints
	mock.lockListComplaints.RUnlock()
	return calls
}

func (mock *complaintServiceMock) ListEntities(ctx context.Context) ([]domain.PublicEntity, error) {
	if mock.ListEntitiesFunc == nil {
		panic("complaintServiceMock.ListEntitiesFunc: method is nil but complaintService.ListEntities was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListEntities.Lock()
	mock.calls.ListEntities = append(mock.calls.ListEntities, callInfo)
	mock.lockListEntities.Unlock()
	return mock.ListEntitiesFunc(ctx)
}

func (mock *complaintServiceMock) ListEntitiesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListEntities.RLock()
	calls := mock.calls.ListEntities
	mock.lockListEntities.RUnlock()
	return calls
}

func (mock *complaintServiceMock) GetStats(ctx context.Context) (*domain.ComplaintStats, error) {
	if mock.GetStatsFunc == nil {
		panic("complaintServiceMock.GetStatsFunc: method is nil but complaintService.GetStats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetStats.Lock()
	mock.calls.GetStats = append(mock.calls.GetStats, callInfo)
	mock.lockGetStats.Unlock()
	return mock.GetStatsFunc(ctx)
}

func (mock *complaintServiceMock) GetStatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetStats.RLock()
	calls := mock.calls.GetStats
	mock.lockGetStats.RUnlock()
	return calls
}
