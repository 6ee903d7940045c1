package complaint

import (
	"context"
	"sync"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

var _ statusEventPublisher = &statusEventPublisherMock{}

type statusEventPublisherMock struct {
	PublishStatusChangeFunc func(ctx context.Context, event domain.StatusChangeEvent) error

	calls struct {
		PublishStatusChange []struct {
			Ctx   context.Context
			Event domain.StatusChangeEvent
		}
	}
	lockPublishStatusChange sync.RWMutex
}

func (mock *statusEventPublisherMock) PublishStatusChange(ctx context.Context, event domain.StatusChangeEvent) error {
	if mock.PublishStatusChangeFunc == nil {
		panic("statusEventPublisherMock.PublishStatusChangeFunc: method is nil but statusEventPublisher.PublishStatusChange was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Event domain.StatusChangeEvent
	}{Ctx: ctx, Event: event}
	mock.lockPublishStatusChange.Lock()
	mock.calls.PublishStatusChange = append(mock.calls.PublishStatusChange, callInfo)
	mock.lockPublishStatusChange.Unlock()
	return mock.PublishStatusChangeFunc(ctx, event)
}

func (mock *statusEventPublisherMock) PublishStatusChangeCalls() []struct {
	Ctx   context.Context
	Event domain.StatusChangeEvent
} {
	mock.lockPublishStatusChange.RLock()
	calls := mock.calls.PublishStatusChange
	mock.lockPublishStatusChange.RUnlock()
	return calls
}
