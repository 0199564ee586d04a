package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
	"github.com/binharademo/trelloclone/internal/service/board"
)

var _ boardService = &boardServiceMock{}

type boardServiceMock struct {
	CreateBoardFunc func(ctx context.Context, input board.CreateBoardInput) (*board.Details, error)
	DeleteBoardFunc func(ctx context.Context, boardID uuid.UUID) (bool, error)
	GetBoardFunc    func(ctx context.Context, boardID uuid.UUID) (*board.Details, error)
	ListBoardsFunc  func(ctx context.Context) ([]domain.Board, error)
	ListCardsFunc   func(ctx context.Context, listID uuid.UUID) ([]domain.Card, error)

	calls struct {
		CreateBoard []struct {
			Ctx   context.Context
			Input board.CreateBoardInput
		}
		DeleteBoard []struct {
			Ctx     context.Context
			BoardID uuid.UUID
		}
		GetBoard []struct {
			Ctx     context.Context
			BoardID uuid.UUID
		}
		ListBoards []struct {
			Ctx context.Context
		}
		ListCards []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
	}
	lockCreateBoard sync.RWMutex
	lockDeleteBoard sync.RWMutex
	lockGetBoard    sync.RWMutex
	lockListBoards  sync.RWMutex
	lockListCards   sync.RWMutex
}

func (mock *boardServiceMock) CreateBoard(ctx context.Context, input board.CreateBoardInput) (*board.Details, error) {
	if mock.CreateBoardFunc == nil {
		panic("boardServiceMock.CreateBoardFunc: method is nil but boardService.CreateBoard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input board.CreateBoardInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateBoard.Lock()
	mock.calls.CreateBoard = append(mock.calls.CreateBoard, callInfo)
	mock.lockCreateBoard.Unlock()
	return mock.CreateBoardFunc(ctx, input)
}

func (mock *boardServiceMock) CreateBoardCalls() []struct {
	Ctx   context.Context
	Input board.CreateBoardInput
} {
	mock.lockCreateBoard.RLock()
	calls := mock.calls.CreateBoard
	mock.lockCreateBoard.RUnlock()
	return calls
}

func (mock *boardServiceMock) DeleteBoard(ctx context.Context, boardID uuid.UUID) (bool, error) {
	if mock.DeleteBoardFunc == nil {
		panic("boardServiceMock.DeleteBoardFunc: method is nil but boardService.DeleteBoard was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
	}{
		Ctx:     ctx,
		BoardID: boardID,
	}
	mock.lockDeleteBoard.Lock()
	mock.calls.DeleteBoard = append(mock.calls.DeleteBoard, callInfo)
	mock.lockDeleteBoard.Unlock()
	return mock.DeleteBoardFunc(ctx, boardID)
}

func (mock *boardServiceMock) DeleteBoardCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
} {
	mock.lockDeleteBoard.RLock()
	calls := mock.calls.DeleteBoard
	mock.lockDeleteBoard.RUnlock()
	return calls
}

func (mock *boardServiceMock) GetBoard(ctx context.Context, boardID uuid.UUID) (*board.Details, error) {
	if mock.GetBoardFunc == nil {
		panic("boardServiceMock.GetBoardFunc: method is nil but boardService.GetBoard was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
	}{
		Ctx:     ctx,
		BoardID: boardID,
	}
	mock.lockGetBoard.Lock()
	mock.calls.GetBoard = append(mock.calls.GetBoard, callInfo)
	mock.lockGetBoard.Unlock()
	return mock.GetBoardFunc(ctx, boardID)
}

func (mock *boardServiceMock) GetBoardCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
} {
	mock.lockGetBoard.RLock()
	calls := mock.calls.GetBoard
	mock.lockGetBoard.RUnlock()
	return calls
}

func (mock *boardServiceMock) ListBoards(ctx context.Context) ([]domain.Board, error) {
	if mock.ListBoardsFunc == nil {
		panic("boardServiceMock.ListBoardsFunc: method is nil but boardService.ListBoards was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListBoards.Lock()
	mock.calls.ListBoards = append(mock.calls.ListBoards, callInfo)
	mock.lockListBoards.Unlock()
	return mock.ListBoardsFunc(ctx)
}

func (mock *boardServiceMock) ListBoardsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListBoards.RLock()
	calls := mock.calls.ListBoards
	mock.lockListBoards.RUnlock()
	return calls
}

func (mock *boardServiceMock) ListCards(ctx context.Context, listID uuid.UUID) ([]domain.Card, error) {
	if mock.ListCardsFunc == nil {
		panic("boardServiceMock.ListCardsFunc: method is nil but boardService.ListCards was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{
		Ctx:    ctx,
		ListID: listID,
	}
	mock.lockListCards.Lock()
	mock.calls.ListCards = append(mock.calls.ListCards, callInfo)
	mock.lockListCards.Unlock()
	return mock.ListCardsFunc(ctx, listID)
}

func (mock *boardServiceMock) ListCardsCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockListCards.RLock()
	calls := mock.calls.ListCards
	mock.lockListCards.RUnlock()
	return calls
}
