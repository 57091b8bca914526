package port

//go:generate mockery --name=EngineStore --with-expecter --output=mocks --outpkg=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
)

// EngineStore is the persistence the scheduling routines need. It is an
// outbound port in hexagonal architecture. Implementations wrap failures of
// the backend itself with domain.ErrStoreUnavailable and must make
// UpsertAdSpend atomic per (ad, date).
type EngineStore interface {
	// ListAds returns every ad.
	ListAds(ctx context.Context) ([]domain.Ad, error)
	// ListActiveAds returns ads whose cached active flag is set.
	ListActiveAds(ctx context.Context) ([]domain.Ad, error)
	// GetAd returns an ad by id or domain.ErrNotFound.
	GetAd(ctx context.Context, id int64) (*domain.Ad, error)
	// SaveAd persists the active flag and the accrual checkpoint.
	SaveAd(ctx context.Context, ad *domain.Ad) error

	// ListBrands returns every brand.
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	// SaveBrand persists the spend totals and last_spend_update.
	SaveBrand(ctx context.Context, brand *domain.Brand) error

	// UpsertAdSpend sets the spent hours of an ad on a date, creating the
	// row if needed. It overwrites, never adds.
	UpsertAdSpend(ctx context.Context, adID int64, date domain.Date, hours decimal.Decimal) error
	// SumDailySpend sums AdSpend of the brand's ads on date. The result is
	// invalid (SQL NULL) when no rows match.
	SumDailySpend(ctx context.Context, brandID int64, date domain.Date) (decimal.NullDecimal, error)
	// SumMonthlySpend sums AdSpend of the brand's ads dated within month.
	SumMonthlySpend(ctx context.Context, brandID int64, month domain.YearMonth) (decimal.NullDecimal, error)
	// DeactivateBrandAds clears the active flag of every active ad of the
	// brand without touching last_active_time. It returns the number of
	// ads changed.
	DeactivateBrandAds(ctx context.Context, brandID int64) (int64, error)
}

// CatalogStore backs the CRUD shell around the engine.
type CatalogStore interface {
	CreateBrand(ctx context.Context, brand *domain.Brand) error
	GetBrand(ctx context.Context, id int64) (*domain.Brand, error)
	// UpdateBrand changes name and budgets only.
	UpdateBrand(ctx context.Context, brand *domain.Brand) error
	// DeleteBrand removes the brand and, by cascade, its ads and their spend.
	DeleteBrand(ctx context.Context, id int64) error

	CreateAd(ctx context.Context, ad *domain.Ad) error
	// UpdateAd changes name, brand and window only.
	UpdateAd(ctx context.Context, ad *domain.Ad) error
	DeleteAd(ctx context.Context, id int64) error
	ListAdsByBrand(ctx context.Context, brandID int64) ([]domain.Ad, error)

	// ListAdSpend returns the recorded spend rows of an ad ordered by date.
	ListAdSpend(ctx context.Context, adID int64) ([]domain.AdSpend, error)

	// GetSettings returns nil when no settings were saved yet.
	GetSettings(ctx context.Context) (*domain.Settings, error)
	SaveSettings(ctx context.Context, settings *domain.Settings) error
}

// Store is implemented by every persistence adapter.
type Store interface {
	EngineStore
	CatalogStore
	Close() error
}
