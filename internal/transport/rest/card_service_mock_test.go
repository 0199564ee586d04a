package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
	"github.com/binharademo/trelloclone/internal/service/lifecycle"
)

var _ cardService = &cardServiceMock{}

type cardServiceMock struct {
	CreateCardFunc func(ctx context.Context, input lifecycle.CreateCardInput) (*domain.Card, error)
	DeleteCardFunc func(ctx context.Context, input lifecycle.DeleteCardInput) (bool, error)
	GetCardFunc    func(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	GetHistoryFunc func(ctx context.Context, cardID uuid.UUID) ([]domain.CardHistory, error)
	MoveCardFunc   func(ctx context.Context, input lifecycle.MoveCardInput) (*domain.Card, error)
	UpdateCardFunc func(ctx context.Context, input lifecycle.UpdateCardInput) (*domain.Card, error)

	calls struct {
		CreateCard []struct {
			Ctx   context.Context
			Input lifecycle.CreateCardInput
		}
		DeleteCard []struct {
			Ctx   context.Context
			Input lifecycle.DeleteCardInput
		}
		GetCard []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		GetHistory []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		MoveCard []struct {
			Ctx   context.Context
			Input lifecycle.MoveCardInput
		}
		UpdateCard []struct {
			Ctx   context.Context
			Input lifecycle.UpdateCardInput
		}
	}
	lockCreateCard sync.RWMutex
	lockDeleteCard sync.RWMutex
	lockGetCard    sync.RWMutex
	lockGetHistory sync.RWMutex
	lockMoveCard   sync.RWMutex
	lockUpdateCard sync.RWMutex
}

func (mock *cardServiceMock) CreateCard(ctx context.Context, input lifecycle.CreateCardInput) (*domain.Card, error) {
	if mock.CreateCardFunc == nil {
		panic("cardServiceMock.CreateCardFunc: method is nil but cardService.CreateCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input lifecycle.CreateCardInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateCard.Lock()
	mock.calls.CreateCard = append(mock.calls.CreateCard, callInfo)
	mock.lockCreateCard.Unlock()
	return mock.CreateCardFunc(ctx, input)
}

func (mock *cardServiceMock) CreateCardCalls() []struct {
	Ctx   context.Context
	Input lifecycle.CreateCardInput
} {
	mock.lockCreateCard.RLock()
	calls := mock.calls.CreateCard
	mock.lockCreateCard.RUnlock()
	return calls
}

func (mock *cardServiceMock) DeleteCard(ctx context.Context, input lifecycle.DeleteCardInput) (bool, error) {
	if mock.DeleteCardFunc == nil {
		panic("cardServiceMock.DeleteCardFunc: method is nil but cardService.DeleteCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input lifecycle.DeleteCardInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDeleteCard.Lock()
	mock.calls.DeleteCard = append(mock.calls.DeleteCard, callInfo)
	mock.lockDeleteCard.Unlock()
	return mock.DeleteCardFunc(ctx, input)
}

func (mock *cardServiceMock) DeleteCardCalls() []struct {
	Ctx   context.Context
	Input lifecycle.DeleteCardInput
} {
	mock.lockDeleteCard.RLock()
	calls := mock.calls.DeleteCard
	mock.lockDeleteCard.RUnlock()
	return calls
}

func (mock *cardServiceMock) GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	if mock.GetCardFunc == nil {
		panic("cardServiceMock.GetCardFunc: method is nil but cardService.GetCard was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{
		Ctx:    ctx,
		CardID: cardID,
	}
	mock.lockGetCard.Lock()
	mock.calls.GetCard = append(mock.calls.GetCard, callInfo)
	mock.lockGetCard.Unlock()
	return mock.GetCardFunc(ctx, cardID)
}

func (mock *cardServiceMock) GetCardCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockGetCard.RLock()
	calls := mock.calls.GetCard
	mock.lockGetCard.RUnlock()
	return calls
}

func (mock *cardServiceMock) GetHistory(ctx context.Context, cardID uuid.UUID) ([]domain.CardHistory, error) {
	if mock.GetHistoryFunc == nil {
		panic("cardServiceMock.GetHistoryFunc: method is nil but cardService.GetHistory was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{
		Ctx:    ctx,
		CardID: cardID,
	}
	mock.lockGetHistory.Lock()
	mock.calls.GetHistory = append(mock.calls.GetHistory, callInfo)
	mock.lockGetHistory.Unlock()
	return mock.GetHistoryFunc(ctx, cardID)
}

func (mock *cardServiceMock) GetHistoryCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockGetHistory.RLock()
	calls := mock.calls.GetHistory
	mock.lockGetHistory.RUnlock()
	return calls
}

func (mock *cardServiceMock) MoveCard(ctx context.Context, input lifecycle.MoveCardInput) (*domain.Card, error) {
	if mock.MoveCardFunc == nil {
		panic("cardServiceMock.MoveCardFunc: method is nil but cardService.MoveCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input lifecycle.MoveCardInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockMoveCard.Lock()
	mock.calls.MoveCard = append(mock.calls.MoveCard, callInfo)
	mock.lockMoveCard.Unlock()
	return mock.MoveCardFunc(ctx, input)
}

func (mock *cardServiceMock) MoveCardCalls() []struct {
	Ctx   context.Context
	Input lifecycle.MoveCardInput
} {
	mock.lockMoveCard.RLock()
	calls := mock.calls.MoveCard
	mock.lockMoveCard.RUnlock()
	return calls
}

func (mock *cardServiceMock) UpdateCard(ctx context.Context, input lifecycle.UpdateCardInput) (*domain.Card, error) {
	if mock.UpdateCardFunc == nil {
		panic("cardServiceMock.UpdateCardFunc: method is nil but cardService.UpdateCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input lifecycle.UpdateCardInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateCard.Lock()
	mock.calls.UpdateCard = append(mock.calls.UpdateCard, callInfo)
	mock.lockUpdateCard.Unlock()
	return mock.UpdateCardFunc(ctx, input)
}

func (mock *cardServiceMock) UpdateCardCalls() []struct {
	Ctx   context.Context
	Input lifecycle.UpdateCardInput
} {
	mock.lockUpdateCard.RLock()
	calls := mock.calls.UpdateCard
	mock.lockUpdateCard.RUnlock()
	return calls
}
