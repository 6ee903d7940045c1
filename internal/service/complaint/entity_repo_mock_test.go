package complaint

import (
	"context"
	"sync"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

var _ entityRepo = &entityRepoMock{}

type entityRepoMock struct {
	ExistsFunc func(ctx context.Context, id int64) (bool, error)
	ListFunc   func(ctx context.Context) ([]domain.PublicEntity, error)

	calls struct {
		Exists []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockExists sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *entityRepoMock) Exists(ctx context.Context, id int64) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("entityRepoMock.ExistsFunc: method is nil but entityRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, id)
}

func (mock *entityRepoMock) ExistsCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *entityRepoMock) List(ctx context.Context) ([]domain.PublicEntity, error) {
	if mock.ListFunc == nil {
		panic("entityRepoMock.ListFunc: method is nil but entityRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *entityRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
