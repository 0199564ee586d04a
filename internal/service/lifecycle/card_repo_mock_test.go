package lifecycle

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	CreateFunc      func(ctx context.Context, c domain.Card) (domain.Card, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) (bool, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (domain.Card, error)
	GetWithListFunc func(ctx context.Context, id uuid.UUID) (domain.CardWithList, error)
	UpdateFunc      func(ctx context.Context, c domain.Card, expectedVersion int64) (domain.Card, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   domain.Card
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetWithList []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx             context.Context
			C               domain.Card
			ExpectedVersion int64
		}
	}
	lockCreate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockGetWithList sync.RWMutex
	lockUpdate      sync.RWMutex
}

func (mock *cardRepoMock) Create(ctx context.Context, c domain.Card) (domain.Card, error) {
	if mock.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Card
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *cardRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Card
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cardRepoMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("cardRepoMock.DeleteFunc: method is nil but cardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *cardRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *cardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Card, error) {
	if mock.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
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

func (mock *cardRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *cardRepoMock) GetWithList(ctx context.Context, id uuid.UUID) (domain.CardWithList, error) {
	if mock.GetWithListFunc == nil {
		panic("cardRepoMock.GetWithListFunc: method is nil but cardRepo.GetWithList was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetWithList.Lock()
	mock.calls.GetWithList = append(mock.calls.GetWithList, callInfo)
	mock.lockGetWithList.Unlock()
	return mock.GetWithListFunc(ctx, id)
}

func (mock *cardRepoMock) GetWithListCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetWithList.RLock()
	calls := mock.calls.GetWithList
	mock.lockGetWithList.RUnlock()
	return calls
}

func (mock *cardRepoMock) Update(ctx context.Context, c domain.Card, expectedVersion int64) (domain.Card, error) {
	if mock.UpdateFunc == nil {
		panic("cardRepoMock.UpdateFunc: method is nil but cardRepo.Update was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		C               domain.Card
		ExpectedVersion int64
	}{
		Ctx:             ctx,
		C:               c,
		ExpectedVersion: expectedVersion,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c, expectedVersion)
}

func (mock *cardRepoMock) UpdateCalls() []struct {
	Ctx             context.Context
	C               domain.Card
	ExpectedVersion int64
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
