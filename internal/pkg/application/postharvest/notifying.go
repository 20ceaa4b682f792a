package postharvest

import (
	"context"

	"github.com/diwise/postharvest/internal/pkg/application/notifications"
	"github.com/diwise/postharvest/internal/pkg/infrastructure/database"
	"github.com/diwise/postharvest/pkg/postharvest/types"
)

type notifyingCommodityStore struct {
	CommodityStore
	notifier notifications.Notifier
}

// NewNotifyingCommodityStore reports successful changes to the notifier
func NewNotifyingCommodityStore(store CommodityStore, notifier notifications.Notifier) CommodityStore {
	return &notifyingCommodityStore{CommodityStore: store, notifier: notifier}
}

func (s *notifyingCommodityStore) Create(ctx context.Context, c types.Commodity) (types.Commodity, error) {
	created, err := s.CommodityStore.Create(ctx, c)
	if err == nil {
		s.notifier.CommodityCreated(ctx, created)
	}
	return created, err
}

func (s *notifyingCommodityStore) Update(ctx context.Context, id string, changes database.Changes) (types.Commodity, error) {
	updated, err := s.CommodityStore.Update(ctx, id, changes)
	if err == nil {
		s.notifier.CommodityUpdated(ctx, updated)
	}
	return updated, err
}

func (s *notifyingCommodityStore) Remove(ctx context.Context, id string) error {
	err := s.CommodityStore.Remove(ctx, id)
	if err == nil {
		s.notifier.CommodityRemoved(ctx, id)
	}
	return err
}
