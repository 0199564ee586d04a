package board

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	ListByListFunc    func(ctx context.Context, listID uuid.UUID) ([]domain.Card, error)
	ListByListIDsFunc func(ctx context.Context, listIDs []uuid.UUID) ([]domain.Card, error)

	calls struct {
		ListByList []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
		ListByListIDs []struct {
			Ctx     context.Context
			ListIDs []uuid.UUID
		}
	}
	lockListByList    sync.RWMutex
	lockListByListIDs sync.RWMutex
}

func (mock *cardRepoMock) ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Card, error) {
	if mock.ListByListFunc == nil {
		panic("cardRepoMock.ListByListFunc: method is nil but cardRepo.ListByList was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{
		Ctx:    ctx,
		ListID: listID,
	}
	mock.lockListByList.Lock()
	mock.calls.ListByList = append(mock.calls.ListByList, callInfo)
	mock.lockListByList.Unlock()
	return mock.ListByListFunc(ctx, listID)
}

func (mock *cardRepoMock) ListByListCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockListByList.RLock()
	calls := mock.calls.ListByList
	mock.lockListByList.RUnlock()
	return calls
}

func (mock *cardRepoMock) ListByListIDs(ctx context.Context, listIDs []uuid.UUID) ([]domain.Card, error) {
	if mock.ListByListIDsFunc == nil {
		panic("cardRepoMock.ListByListIDsFunc: method is nil but cardRepo.ListByListIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ListIDs []uuid.UUID
	}{
		Ctx:     ctx,
		ListIDs: listIDs,
	}
	mock.lockListByListIDs.Lock()
	mock.calls.ListByListIDs = append(mock.calls.ListByListIDs, callInfo)
	mock.lockListByListIDs.Unlock()
	return mock.ListByListIDsFunc(ctx, listIDs)
}

func (mock *cardRepoMock) ListByListIDsCalls() []struct {
	Ctx     context.Context
	ListIDs []uuid.UUID
} {
	mock.lockListByListIDs.RLock()
	calls := mock.calls.ListByListIDs
	mock.lockListByListIDs.RUnlock()
	return calls
}
