package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
)

// Catalog defines the CRUD and reporting operations exposed to the HTTP
// shell. Write operations validate input and return errors wrapping
// domain.ErrValidation; lookups of unknown ids return domain.ErrNotFound.
type Catalog interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	// GetBrand returns the brand together with its ads.
	GetBrand(ctx context.Context, id int64) (*BrandDetail, error)
	CreateBrand(ctx context.Context, in BrandInput) (*domain.Brand, error)
	UpdateBrand(ctx context.Context, id int64, in BrandInput) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, id int64) error

	ListAds(ctx context.Context) ([]domain.Ad, error)
	GetAd(ctx context.Context, id int64) (*domain.Ad, error)
	CreateAd(ctx context.Context, in AdInput) (*domain.Ad, error)
	UpdateAd(ctx context.Context, id int64, in AdInput) (*domain.Ad, error)
	DeleteAd(ctx context.Context, id int64) error

	// AdSpendProjection splits the ad's window, capped at now, into days.
	AdSpendProjection(ctx context.Context, adID int64) ([]SpendLine, error)
	// AdSpendRecords lists the AdSpend rows written by the accrual routine.
	AdSpendRecords(ctx context.Context, adID int64) ([]domain.AdSpend, error)
	// BrandDailySpend aggregates the projections of all the brand's ads
	// per date, oldest first.
	BrandDailySpend(ctx context.Context, brandID int64) ([]SpendLine, error)
	// BrandMonthlySpend aggregates the same projections per month.
	BrandMonthlySpend(ctx context.Context, brandID int64) ([]SpendLine, error)
	// BrandSpendOn returns the projected spend of a single date, zero when
	// the brand had no ads running that day.
	BrandSpendOn(ctx context.Context, brandID int64, date domain.Date) (SpendLine, error)
	// BrandSpendIn returns the projected spend of a single month.
	BrandSpendIn(ctx context.Context, brandID int64, month domain.YearMonth) (SpendLine, error)

	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, in SettingsInput) (*domain.Settings, error)
}

// BrandDetail is a brand with its ads nested, as served by GET /brands/{id}.
type BrandDetail struct {
	domain.Brand
	Ads []domain.Ad `json:"ads"`
}

// SpendLine is one period of a spend report. Period is YYYY-MM-DD for daily
// reports and YYYY-MM for monthly ones. Cost prices Hours at the configured
// hourly rate.
type SpendLine struct {
	Period string          `json:"period"`
	Hours  int64           `json:"hours"`
	Cost   decimal.Decimal `json:"cost"`
}

// BrandInput is the writable part of a brand.
type BrandInput struct {
	Name          string           `json:"name" validate:"required,max=100"`
	DailyBudget   *decimal.Decimal `json:"daily_budget" validate:"required"`
	MonthlyBudget *decimal.Decimal `json:"monthly_budget" validate:"required"`
}

// AdInput is the writable part of an ad. The active flag and the accrual
// checkpoint belong to the engine and cannot be set through the catalog.
type AdInput struct {
	BrandID   int64      `json:"brand_id" validate:"required,gt=0"`
	Name      string     `json:"name" validate:"required,max=255"`
	StartTime *time.Time `json:"start_time" validate:"required"`
	EndTime   *time.Time `json:"end_time" validate:"required"`
}

type SettingsInput struct {
	HourlyRate *decimal.Decimal `json:"hourly_rate" validate:"required"`
}
