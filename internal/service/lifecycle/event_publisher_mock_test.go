package lifecycle

import (
	"context"
	"sync"

	"github.com/binharademo/trelloclone/internal/domain"
)

var _ eventPublisher = &eventPublisherMock{}

type eventPublisherMock struct {
	PublishFunc func(ctx context.Context, evt domain.BoardEvent)

	calls struct {
		Publish []struct {
			Ctx context.Context
			Evt domain.BoardEvent
		}
	}
	lockPublish sync.RWMutex
}

func (mock *eventPublisherMock) Publish(ctx context.Context, evt domain.BoardEvent) {
	if mock.PublishFunc == nil {
		panic("eventPublisherMock.PublishFunc: method is nil but eventPublisher.Publish was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Evt domain.BoardEvent
	}{
		Ctx: ctx,
		Evt: evt,
	}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	mock.PublishFunc(ctx, evt)
}

func (mock *eventPublisherMock) PublishCalls() []struct {
	Ctx context.Context
	Evt domain.BoardEvent
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
