package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/binharademo/trelloclone/internal/domain"
)

// newUserBatchFn resolves users by id. A missing user yields a nil result,
// not an error: history rows may reference users that were removed.
func newUserBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			u := users[i]
			byID[u.ID] = &u
		}

		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.User]{Data: byID[key]}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// DisplayNames resolves the display name of every id through the user
// loader. Unknown users map to domain.AnonymousName.
func DisplayNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	users, errs := FromContext(ctx).UserByID.LoadMany(ctx, ids)()
	for i, id := range ids {
		if len(errs) > i && errs[i] != nil {
			return nil, errs[i]
		}
		actor := domain.Actor{ID: id}
		if users[i] != nil {
			actor.Name = users[i].Username
		}
		names[id] = actor.DisplayName()
	}
	return names, nil
}
