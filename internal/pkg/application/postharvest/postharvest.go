package postharvest

import (
	"context"

	"github.com/diwise/postharvest/internal/pkg/application/notifications"
	"github.com/diwise/postharvest/internal/pkg/application/repositories"
	"github.com/diwise/postharvest/internal/pkg/infrastructure/database"
	"github.com/diwise/postharvest/pkg/postharvest/types"
)

//go:generate moq -rm -out commoditystore_mock.go . CommodityStore

type CommodityStore interface {
	Create(ctx context.Context, c types.Commodity) (types.Commodity, error)
	FindAll(ctx context.Context) ([]types.Commodity, error)
	Get(ctx context.Context, id string) (types.CommodityDetails, error)
	GetByID(ctx context.Context, id string) (types.Commodity, error)
	Update(ctx context.Context, id string, changes database.Changes) (types.Commodity, error)
	Remove(ctx context.Context, id string) error
}

//go:generate moq -rm -out handlingstore_mock.go . HandlingStore

// HandlingStore manages one kind of per commodity handling data
type HandlingStore[T any] interface {
	Create(ctx context.Context, commodityID string, data T) (T, error)
	GetByID(ctx context.Context, id int) (T, error)
	GetByCommodity(ctx context.Context, commodityID string) ([]T, error)
	Update(ctx context.Context, id int, changes database.Changes) (T, error)
	Remove(ctx context.Context, id int) error
}

type ReferenceStore interface {
	Create(ctx context.Context, commodityID, source string) (types.Reference, error)
	GetByCommodity(ctx context.Context, commodityID string) ([]types.Reference, error)
	Remove(ctx context.Context, id int) error
	RemoveByCommodity(ctx context.Context, commodityID string) (int, error)
}

type StudyStore interface {
	Create(ctx context.Context, s types.Study) (types.Study, error)
	FindAll(ctx context.Context) ([]types.Study, error)
	GetByID(ctx context.Context, id int) (types.Study, error)
	Update(ctx context.Context, id int, changes database.Changes) (types.Study, error)
	Remove(ctx context.Context, id int) error
}

type StudyCommodityStore interface {
	Create(ctx context.Context, studyID int, commodityID string) (types.StudyCommodity, error)
	GetByStudy(ctx context.Context, studyID int) ([]string, error)
	GetByCommodity(ctx context.Context, commodityID string) ([]int, error)
	Remove(ctx context.Context, studyID int, commodityID string) error
}

//go:generate moq -rm -out userstore_mock.go . UserStore

type UserStore interface {
	Register(ctx context.Context, u types.NewUser) (types.User, error)
	Authenticate(ctx context.Context, username, password string) (types.User, error)
	Get(ctx context.Context, username string) (types.User, error)
	FindAll(ctx context.Context) ([]types.User, error)
	Update(ctx context.Context, username string, changes database.Changes) (types.User, error)
	Remove(ctx context.Context, username string) error
}

// App is what the api handlers operate on
type App struct {
	Commodities      CommodityStore
	Ethylene         HandlingStore[types.EthyleneSensitivity]
	Respiration      HandlingStore[types.RespirationRate]
	ShelfLife        HandlingStore[types.ShelfLife]
	Temperature      HandlingStore[types.TemperatureRecommendation]
	References       ReferenceStore
	Studies          StudyStore
	StudyCommodities StudyCommodityStore
	Users            UserStore

	Ping func(ctx context.Context) error
}

// New wires every store to the same database. Commodity changes are
// reported to notifier when it is not nil.
func New(db database.Database, bcryptWorkFactor int, notifier notifications.Notifier) *App {
	var commodities CommodityStore = repositories.NewCommodities(db)
	if notifier != nil {
		commodities = NewNotifyingCommodityStore(commodities, notifier)
	}

	return &App{
		Commodities:      commodities,
		Ethylene:         repositories.NewEthyleneSensitivity(db),
		Respiration:      repositories.NewRespirationRates(db),
		ShelfLife:        repositories.NewShelfLife(db),
		Temperature:      repositories.NewTemperatureRecommendations(db),
		References:       repositories.NewReferences(db),
		Studies:          repositories.NewStudies(db),
		StudyCommodities: repositories.NewStudyCommodities(db),
		Users:            repositories.NewUsers(db, bcryptWorkFactor),
		Ping:             db.Ping,
	}
}
