package analytics_controller

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// fetchAnalyticsInputs loads orders, customers and products concurrently.
// Results land in whatever subset of the out-pointers is non-nil.
func fetchAnalyticsInputs(ctx context.Context, orders *[]models.Order, customers *[]models.Customer, products *[]models.Product) error {
	g, gctx := errgroup.WithContext(ctx)

	if orders != nil {
		g.Go(func() error {
			rows, err := store.List[models.Order](gctx, config.Gorm, store.OrderBy("created_at DESC"))
			if err != nil {
				return err
			}
			*orders = rows
			return nil
		})
	}

	if customers != nil {
		g.Go(func() error {
			rows, err := store.List[models.Customer](gctx, config.Gorm)
			if err != nil {
				return err
			}
			*customers = rows
			return nil
		})
	}

	if products != nil {
		g.Go(func() error {
			rows, err := store.List[models.Product](gctx, config.Gorm)
			if err != nil {
				return err
			}
			*products = rows
			return nil
		})
	}

	return g.Wait()
}
