package board

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
)

var _ boardRepo = &boardRepoMock{}

type boardRepoMock struct {
	CreateFunc      func(ctx context.Context, b domain.Board) (domain.Board, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (bool, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (domain.Board, error)
	ListByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) ([]domain.Board, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			B   domain.Board
		}
		Delete []struct {
			Ctx     context.Context
			ID      uuid.UUID
			OwnerID uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockListByOwner sync.RWMutex
}

func (mock *boardRepoMock) Create(ctx context.Context, b domain.Board) (domain.Board, error) {
	if mock.CreateFunc == nil {
		panic("boardRepoMock.CreateFunc: method is nil but boardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   domain.Board
	}{
		Ctx: ctx,
		B:   b,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *boardRepoMock) CreateCalls() []struct {
	Ctx context.Context
	B   domain.Board
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *boardRepoMock) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("boardRepoMock.DeleteFunc: method is nil but boardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		OwnerID uuid.UUID
	}{
		Ctx:     ctx,
		ID:      id,
		OwnerID: ownerID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id, ownerID)
}

func (mock *boardRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	OwnerID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *boardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Board, error) {
	if mock.GetByIDFunc == nil {
		panic("boardRepoMock.GetByIDFunc: method is nil but boardRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *boardRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *boardRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Board, error) {
	if mock.ListByOwnerFunc == nil {
		panic("boardRepoMock.ListByOwnerFunc: method is nil but boardRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
	}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *boardRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}
