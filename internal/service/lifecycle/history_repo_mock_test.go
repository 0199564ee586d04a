package lifecycle

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	AppendFunc     func(ctx context.Context, h domain.CardHistory) (domain.CardHistory, error)
	ListByCardFunc func(ctx context.Context, cardID uuid.UUID) ([]domain.CardHistory, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			H   domain.CardHistory
		}
		ListByCard []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
	}
	lockAppend     sync.RWMutex
	lockListByCard sync.RWMutex
}

func (mock *historyRepoMock) Append(ctx context.Context, h domain.CardHistory) (domain.CardHistory, error) {
	if mock.AppendFunc == nil {
		panic("historyRepoMock.AppendFunc: method is nil but historyRepo.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		H   domain.CardHistory
	}{
		Ctx: ctx,
		H:   h,
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, h)
}

func (mock *historyRepoMock) AppendCalls() []struct {
	Ctx context.Context
	H   domain.CardHistory
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *historyRepoMock) ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.CardHistory, error) {
	if mock.ListByCardFunc == nil {
		panic("historyRepoMock.ListByCardFunc: method is nil but historyRepo.ListByCard was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{
		Ctx:    ctx,
		CardID: cardID,
	}
	mock.lockListByCard.Lock()
	mock.calls.ListByCard = append(mock.calls.ListByCard, callInfo)
	mock.lockListByCard.Unlock()
	return mock.ListByCardFunc(ctx, cardID)
}

func (mock *historyRepoMock) ListByCardCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockListByCard.RLock()
	calls := mock.calls.ListByCard
	mock.lockListByCard.RUnlock()
	return calls
}
