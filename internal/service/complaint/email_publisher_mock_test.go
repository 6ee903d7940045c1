package complaint

import (
	"context"
	"sync"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

var _ emailPublisher = &emailPublisherMock{}

type emailPublisherMock struct {
	PublishEmailFunc func(ctx context.Context, n domain.EmailNotification) error

	calls struct {
		PublishEmail []struct {
			Ctx context.Context
			N   domain.EmailNotification
		}
	}
	lockPublishEmail sync.RWMutex
}

func (mock *emailPublisherMock) PublishEmail(ctx context.Context, n domain.EmailNotification) error {
	if mock.PublishEmailFunc == nil {
		panic("emailPublisherMock.PublishEmailFunc: method is nil but emailPublisher.PublishEmail was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   domain.EmailNotification
	}{Ctx: ctx, N: n}
	mock.lockPublishEmail.Lock()
	mock.calls.PublishEmail = append(mock.calls.PublishEmail, callInfo)
	mock.lockPublishEmail.Unlock()
	return mock.PublishEmailFunc(ctx, n)
}

func (mock *emailPublisherMock) PublishEmailCalls() []struct {
	Ctx context.Context
	N   domain.EmailNotification
} {
	mock.lockPublishEmail.RLock()
	calls := mock.calls.PublishEmail
	mock.lockPublishEmail.RUnlock()
	return calls
}
