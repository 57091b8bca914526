package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

var _ port.Catalog = (*CatalogUseCase)(nil)

// CatalogUseCase implements CRUD and spend reports on top of a Store.
// Reports are projections of the ads' windows, not the AdSpend rows the
// engine writes, so they also cover periods the scheduler never saw.
type CatalogUseCase struct {
	store       port.Store
	clock       port.Clock
	validate    *validator.Validate
	defaultRate decimal.Decimal
	logger      *slog.Logger
}

// NewCatalogUseCase creates the catalog. defaultRate prices spend hours
// until a rate is saved through UpdateSettings.
func NewCatalogUseCase(store port.Store, clock port.Clock, defaultRate decimal.Decimal, logger *slog.Logger) *CatalogUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CatalogUseCase{
		store:       store,
		clock:       clock,
		validate:    v,
		defaultRate: defaultRate,
		logger:      logger,
	}
}

// check runs struct tag validation and reports the first failing field.
func (u *CatalogUseCase) check(in any) error {
	err := u.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate: %w", err)
	}
	fe := verrs[0]
	return &domain.ValidationError{Field: fe.Field(), Message: validationMessage(fe)}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}

func (u *CatalogUseCase) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return u.store.ListBrands(ctx)
}

func (u *CatalogUseCase) GetBrand(ctx context.Context, id int64) (*port.BrandDetail, error) {
	brand, err := u.store.GetBrand(ctx, id)
	if err != nil {
		return nil, err
	}
	ads, err := u.store.ListAdsByBrand(ctx, id)
	if err != nil {
		return nil, err
	}
	return &port.BrandDetail{Brand: *brand, Ads: ads}, nil
}

func (u *CatalogUseCase) CreateBrand(ctx context.Context, in port.BrandInput) (*domain.Brand, error) {
	brand, err := u.brandFromInput(in)
	if err != nil {
		return nil, err
	}
	if err = u.store.CreateBrand(ctx, brand); err != nil {
		return nil, err
	}
	u.logger.Info("brand created", slog.Int64("brand_id", brand.ID), slog.String("name", brand.Name))
	return brand, nil
}

func (u *CatalogUseCase) UpdateBrand(ctx context.Context, id int64, in port.BrandInput) (*domain.Brand, error) {
	brand, err := u.brandFromInput(in)
	if err != nil {
		return nil, err
	}
	brand.ID = id
	if err = u.store.UpdateBrand(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (u *CatalogUseCase) brandFromInput(in port.BrandInput) (*domain.Brand, error) {
	if err := u.check(in); err != nil {
		return nil, err
	}
	brand := &domain.Brand{
		Name:          in.Name,
		DailyBudget:   *in.DailyBudget,
		MonthlyBudget: *in.MonthlyBudget,
	}
	if err := brand.Validate(); err != nil {
		return nil, err
	}
	return brand, nil
}

func (u *CatalogUseCase) DeleteBrand(ctx context.Context, id int64) error {
	if err := u.store.DeleteBrand(ctx, id); err != nil {
		return err
	}
	u.logger.Info("brand deleted", slog.Int64("brand_id", id))
	return nil
}

func (u *CatalogUseCase) ListAds(ctx context.Context) ([]domain.Ad, error) {
	return u.store.ListAds(ctx)
}

func (u *CatalogUseCase) GetAd(ctx context.Context, id int64) (*domain.Ad, error) {
	return u.store.GetAd(ctx, id)
}

func (u *CatalogUseCase) CreateAd(ctx context.Context, in port.AdInput) (*domain.Ad, error) {
	ad, err := u.adFromInput(in)
	if err != nil {
		return nil, err
	}
	if err = u.store.CreateAd(ctx, ad); err != nil {
		return nil, err
	}
	u.logger.Info("ad created", slog.Int64("ad_id", ad.ID), slog.Int64("brand_id", ad.BrandID))
	return ad, nil
}

// UpdateAd changes the ad's window. The engine picks the new window up on
// its next activation pass.
func (u *CatalogUseCase) UpdateAd(ctx context.Context, id int64, in port.AdInput) (*domain.Ad, error) {
	ad, err := u.adFromInput(in)
	if err != nil {
		return nil, err
	}
	ad.ID = id
	if err = u.store.UpdateAd(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

func (u *CatalogUseCase) adFromInput(in port.AdInput) (*domain.Ad, error) {
	if err := u.check(in); err != nil {
		return nil, err
	}
	ad := &domain.Ad{
		BrandID:   in.BrandID,
		Name:      in.Name,
		StartTime: *in.StartTime,
		EndTime:   *in.EndTime,
	}
	if err := ad.Validate(); err != nil {
		return nil, err
	}
	return ad, nil
}

func (u *CatalogUseCase) DeleteAd(ctx context.Context, id int64) error {
	return u.store.DeleteAd(ctx, id)
}

func (u *CatalogUseCase) AdSpendRecords(ctx context.Context, adID int64) ([]domain.AdSpend, error) {
	if _, err := u.store.GetAd(ctx, adID); err != nil {
		return nil, err
	}
	return u.store.ListAdSpend(ctx, adID)
}

func (u *CatalogUseCase) AdSpendProjection(ctx context.Context, adID int64) ([]port.SpendLine, error) {
	ad, err := u.store.GetAd(ctx, adID)
	if err != nil {
		return nil, err
	}
	rate, err := u.hourlyRate(ctx)
	if err != nil {
		return nil, err
	}
	buckets, err := ad.ProjectSpend(u.clock.Now())
	if err != nil {
		return nil, err
	}
	lines := make([]port.SpendLine, 0, len(buckets))
	for _, b := range buckets {
		lines = append(lines, spendLine(b.Date.String(), b.Hours, rate))
	}
	return lines, nil
}

func (u *CatalogUseCase) BrandDailySpend(ctx context.Context, brandID int64) ([]port.SpendLine, error) {
	perDay, rate, err := u.brandProjection(ctx, brandID)
	if err != nil {
		return nil, err
	}
	dates := make([]domain.Date, 0, len(perDay))
	for d := range perDay {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	lines := make([]port.SpendLine, 0, len(dates))
	for _, d := range dates {
		lines = append(lines, spendLine(d.String(), perDay[d], rate))
	}
	return lines, nil
}

func (u *CatalogUseCase) BrandMonthlySpend(ctx context.Context, brandID int64) ([]port.SpendLine, error) {
	perDay, rate, err := u.brandProjection(ctx, brandID)
	if err != nil {
		return nil, err
	}
	perMonth := make(map[domain.YearMonth]int64)
	for d, h := range perDay {
		perMonth[d.YearMonth()] += h
	}
	months := make([]domain.YearMonth, 0, len(perMonth))
	for m := range perMonth {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].FirstDay().Before(months[j].FirstDay())
	})

	lines := make([]port.SpendLine, 0, len(months))
	for _, m := range months {
		lines = append(lines, spendLine(m.String(), perMonth[m], rate))
	}
	return lines, nil
}

func (u *CatalogUseCase) BrandSpendOn(ctx context.Context, brandID int64, date domain.Date) (port.SpendLine, error) {
	perDay, rate, err := u.brandProjection(ctx, brandID)
	if err != nil {
		return port.SpendLine{}, err
	}
	return spendLine(date.String(), perDay[date], rate), nil
}

func (u *CatalogUseCase) BrandSpendIn(ctx context.Context, brandID int64, month domain.YearMonth) (port.SpendLine, error) {
	perDay, rate, err := u.brandProjection(ctx, brandID)
	if err != nil {
		return port.SpendLine{}, err
	}
	var hours int64
	for d, h := range perDay {
		if month.Contains(d) {
			hours += h
		}
	}
	return spendLine(month.String(), hours, rate), nil
}

// brandProjection sums the projected hours of all the brand's ads per day.
func (u *CatalogUseCase) brandProjection(ctx context.Context, brandID int64) (map[domain.Date]int64, decimal.Decimal, error) {
	if _, err := u.store.GetBrand(ctx, brandID); err != nil {
		return nil, decimal.Zero, err
	}
	ads, err := u.store.ListAdsByBrand(ctx, brandID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	rate, err := u.hourlyRate(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}

	now := u.clock.Now()
	perDay := make(map[domain.Date]int64)
	for i := range ads {
		buckets, err := ads[i].ProjectSpend(now)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("project ad %d: %w", ads[i].ID, err)
		}
		for _, b := range buckets {
			perDay[b.Date] += b.Hours
		}
	}
	return perDay, rate, nil
}

func (u *CatalogUseCase) hourlyRate(ctx context.Context) (decimal.Decimal, error) {
	s, err := u.store.GetSettings(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if s == nil {
		return u.defaultRate, nil
	}
	return s.HourlyRate, nil
}

func spendLine(period string, hours int64, rate decimal.Decimal) port.SpendLine {
	return port.SpendLine{Period: period, Hours: hours, Cost: decimal.NewFromInt(hours).Mul(rate)}
}

// GetSettings returns the saved settings or the defaults.
func (u *CatalogUseCase) GetSettings(ctx context.Context) (*domain.Settings, error) {
	s, err := u.store.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return &domain.Settings{HourlyRate: u.defaultRate}, nil
	}
	return s, nil
}

func (u *CatalogUseCase) UpdateSettings(ctx context.Context, in port.SettingsInput) (*domain.Settings, error) {
	if err := u.check(in); err != nil {
		return nil, err
	}
	if in.HourlyRate.IsNegative() {
		return nil, &domain.ValidationError{Field: "hourly_rate", Message: "must not be negative"}
	}
	s := &domain.Settings{HourlyRate: *in.HourlyRate}
	if err := u.store.SaveSettings(ctx, s); err != nil {
		return nil, err
	}
	u.logger.Info("settings updated", slog.String("hourly_rate", s.HourlyRate.String()))
	return s, nil
}
