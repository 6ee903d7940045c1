package complaint

import (
	"context"
	"sync"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

var _ complaintRepo = &complaintRepoMock{}

type complaintRepoMock struct {
	CreateFunc        func(ctx context.Context, entityID int64, description string) (int64, error)
	GetByIDFunc       func(ctx context.Context, id int64) (*domain.Complaint, error)
	ListActiveFunc    func(ctx context.Context) ([]domain.Complaint, error)
	UpdateStatusFunc  func(ctx context.Context, id int64, status domain.ComplaintStatus) (bool, error)
	SoftDeleteFunc    func(ctx context.Context, id int64) (bool, error)
	CountByEntityFunc func(ctx context.Context) ([]domain.EntityCount, error)
	CountByStatusFunc func(ctx context.Context) ([]domain.StatusCount, error)

	calls struct {
		Create []struct {
			Ctx         context.Context
			EntityID    int64
			Description string
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		ListActive []struct {
			Ctx context.Context
		}
		UpdateStatus []struct {
			Ctx    context.Context
			Id     int64
			Status domain.ComplaintStatus
		}
		SoftDelete []struct {
			Ctx context.Context
			Id  int64
		}
		CountByEntity []struct {
			Ctx context.Context
		}
		CountByStatus []struct {
			Ctx context.Context
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockListActive    sync.RWMutex
	lockUpdateStatus  sync.RWMutex
	lockSoftDelete    sync.RWMutex
	lockCountByEntity sync.RWMutex
	lockCountByStatus sync.RWMutex
}

func (mock *complaintRepoMock) Create(ctx context.Context, entityID int64, description string) (int64, error) {
	if mock.CreateFunc == nil {
		panic("complaintRepoMock.CreateFunc: method is nil but complaintRepo.Create was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		EntityID    int64
		Description string
	}{Ctx: ctx, EntityID: entityID, Description: description}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entityID, description)
}

func (mock *complaintRepoMock) CreateCalls() []struct {
	Ctx         context.Context
	EntityID    int64
	Description string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *complaintRepoMock) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	if mock.GetByIDFunc == nil {
		panic("complaintRepoMock.GetByIDFunc: method is nil but complaintRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *complaintRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *complaintRepoMock) ListActive(ctx context.Context) ([]domain.Complaint, error) {
	if mock.ListActiveFunc == nil {
		panic("complaintRepoMock.ListActiveFunc: method is nil but complaintRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *complaintRepoMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *complaintRepoMock) UpdateStatus(ctx context.Context, id int64, status domain.ComplaintStatus) (bool, error) {
	if mock.UpdateStatusFunc == nil {
		panic("complaintRepoMock.UpdateStatusFunc: method is nil but complaintRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     int64
		Status domain.ComplaintStatus
	}{Ctx: ctx, Id: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *complaintRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	Id     int64
	Status domain.ComplaintStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *complaintRepoMock) SoftDelete(ctx context.Context, id int64) (bool, error) {
	if mock.SoftDeleteFunc == nil {
		panic("complaintRepoMock.SoftDeleteFunc: method is nil but complaintRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *complaintRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *complaintRepoMock) CountByEntity(ctx context.Context) ([]domain.EntityCount, error) {
	if mock.CountByEntityFunc == nil {
		panic("complaintRepoMock.CountByEntityFunc: method is nil but complaintRepo.CountByEntity was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountByEntity.Lock()
	mock.calls.CountByEntity = append(mock.calls.CountByEntity, callInfo)
	mock.lockCountByEntity.Unlock()
	return mock.CountByEntityFunc(ctx)
}

func (mock *complaintRepoMock) CountByEntityCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountByEntity.RLock()
	calls := mock.calls.CountByEntity
	mock.lockCountByEntity.RUnlock()
	return calls
}

func (mock *complaintRepoMock) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	if mock.CountByStatusFunc == nil {
		panic("complaintRepoMock.CountByStatusFunc: method is nil but complaintRepo.CountByStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx)
}

func (mock *complaintRepoMock) CountByStatusCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}
