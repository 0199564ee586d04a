package board

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
)

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	CreateBatchFunc func(ctx context.Context, lists []domain.List) ([]domain.List, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (domain.List, error)
	ListByBoardFunc func(ctx context.Context, boardID uuid.UUID) ([]domain.List, error)

	calls struct {
		CreateBatch []struct {
			Ctx   context.Context
			Lists []domain.List
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByBoard []struct {
			Ctx     context.Context
			BoardID uuid.UUID
		}
	}
	lockCreateBatch sync.RWMutex
	lockGetByID     sync.RWMutex
	lockListByBoard sync.RWMutex
}

func (mock *listRepoMock) CreateBatch(ctx context.Context, lists []domain.List) ([]domain.List, error) {
	if mock.CreateBatchFunc == nil {
		panic("listRepoMock.CreateBatchFunc: method is nil but listRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Lists []domain.List
	}{
		Ctx:   ctx,
		Lists: lists,
	}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, lists)
}

func (mock *listRepoMock) CreateBatchCalls() []struct {
	Ctx   context.Context
	Lists []domain.List
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}

func (mock *listRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.List, error) {
	if mock.GetByIDFunc == nil {
		panic("listRepoMock.GetByIDFunc: method is nil but listRepo.GetByID was just called")
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

func (mock *listRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *listRepoMock) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.List, error) {
	if mock.ListByBoardFunc == nil {
		panic("listRepoMock.ListByBoardFunc: method is nil but listRepo.ListByBoard was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
	}{
		Ctx:     ctx,
		BoardID: boardID,
	}
	mock.lockListByBoard.Lock()
	mock.calls.ListByBoard = append(mock.calls.ListByBoard, callInfo)
	mock.lockListByBoard.Unlock()
	return mock.ListByBoardFunc(ctx, boardID)
}

func (mock *listRepoMock) ListByBoardCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
} {
	mock.lockListByBoard.RLock()
	calls := mock.calls.ListByBoard
	mock.lockListByBoard.RUnlock()
	return calls
}
