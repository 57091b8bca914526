// Package memory provides an in-memory port.Store for tests and local runs.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

var _ port.Store = (*Store)(nil)

type spendKey struct {
	AdID int64
	Date domain.Date
}

// Store keeps every entity in maps guarded by a single RWMutex, which also
// makes UpsertAdSpend atomic per (ad, date).
type Store struct {
	mu       sync.RWMutex
	brands   map[int64]domain.Brand
	ads      map[int64]domain.Ad
	spend    map[spendKey]domain.AdSpend
	settings *domain.Settings
	nextID   int64
}

func New() *Store {
	return &Store{
		brands: make(map[int64]domain.Brand),
		ads:    make(map[int64]domain.Ad),
		spend:  make(map[spendKey]domain.AdSpend),
	}
}

func (s *Store) Close() error { return nil }

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) ListAds(_ context.Context) ([]domain.Ad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterAds(func(domain.Ad) bool { return true }), nil
}

func (s *Store) ListActiveAds(_ context.Context) ([]domain.Ad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterAds(func(a domain.Ad) bool { return a.Active }), nil
}

func (s *Store) ListAdsByBrand(_ context.Context, brandID int64) ([]domain.Ad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterAds(func(a domain.Ad) bool { return a.BrandID == brandID }), nil
}

func (s *Store) filterAds(keep func(domain.Ad) bool) []domain.Ad {
	out := make([]domain.Ad, 0, len(s.ads))
	for _, a := range s.ads {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetAd(_ context.Context, id int64) (*domain.Ad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.ads[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

// SaveAd persists the engine-owned fields of an ad.
func (s *Store) SaveAd(_ context.Context, ad *domain.Ad) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.ads[ad.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Active = ad.Active
	cur.LastActiveTime = ad.LastActiveTime
	cur.UpdatedAt = time.Now().UTC()
	s.ads[ad.ID] = cur
	return nil
}

func (s *Store) CreateAd(_ context.Context, ad *domain.Ad) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.brands[ad.BrandID]; !ok {
		return &domain.ValidationError{Field: "brand_id", Message: "unknown brand"}
	}
	now := time.Now().UTC()
	ad.ID = s.id()
	ad.CreatedAt, ad.UpdatedAt = now, now
	s.ads[ad.ID] = *ad
	return nil
}

func (s *Store) UpdateAd(_ context.Context, ad *domain.Ad) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.ads[ad.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if _, ok = s.brands[ad.BrandID]; !ok {
		return &domain.ValidationError{Field: "brand_id", Message: "unknown brand"}
	}
	cur.BrandID, cur.Name, cur.StartTime, cur.EndTime = ad.BrandID, ad.Name, ad.StartTime, ad.EndTime
	cur.UpdatedAt = time.Now().UTC()
	s.ads[ad.ID] = cur
	*ad = cur
	return nil
}

func (s *Store) DeleteAd(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ads[id]; !ok {
		return domain.ErrNotFound
	}
	s.deleteAdLocked(id)
	return nil
}

func (s *Store) deleteAdLocked(id int64) {
	delete(s.ads, id)
	for k := range s.spend {
		if k.AdID == id {
			delete(s.spend, k)
		}
	}
}

func (s *Store) ListBrands(_ context.Context) ([]domain.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Brand, 0, len(s.brands))
	for _, b := range s.brands {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetBrand(_ context.Context, id int64) (*domain.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.brands[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

// SaveBrand persists the engine-owned spend fields of a brand.
func (s *Store) SaveBrand(_ context.Context, brand *domain.Brand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.brands[brand.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.DailySpend = brand.DailySpend
	cur.MonthlySpend = brand.MonthlySpend
	cur.LastSpendUpdate = brand.LastSpendUpdate
	cur.UpdatedAt = time.Now().UTC()
	s.brands[brand.ID] = cur
	return nil
}

func (s *Store) CreateBrand(_ context.Context, brand *domain.Brand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	brand.ID = s.id()
	brand.CreatedAt, brand.UpdatedAt = now, now
	s.brands[brand.ID] = *brand
	return nil
}

func (s *Store) UpdateBrand(_ context.Context, brand *domain.Brand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.brands[brand.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Name, cur.DailyBudget, cur.MonthlyBudget = brand.Name, brand.DailyBudget, brand.MonthlyBudget
	cur.UpdatedAt = time.Now().UTC()
	s.brands[brand.ID] = cur
	*brand = cur
	return nil
}

func (s *Store) DeleteBrand(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.brands[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.brands, id)
	for adID, a := range s.ads {
		if a.BrandID == id {
			s.deleteAdLocked(adID)
		}
	}
	return nil
}

func (s *Store) UpsertAdSpend(_ context.Context, adID int64, date domain.Date, hours decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ads[adID]; !ok {
		return domain.ErrNotFound
	}
	s.spend[spendKey{AdID: adID, Date: date}] = domain.AdSpend{
		AdID:      adID,
		Date:      date,
		Spent:     hours,
		UpdatedAt: time.Now().UTC(),
	}
	return nil
}

func (s *Store) SumDailySpend(_ context.Context, brandID int64, date domain.Date) (decimal.NullDecimal, error) {
	return s.sumSpend(brandID, func(d domain.Date) bool { return d == date }), nil
}

func (s *Store) SumMonthlySpend(_ context.Context, brandID int64, month domain.YearMonth) (decimal.NullDecimal, error) {
	return s.sumSpend(brandID, month.Contains), nil
}

// sumSpend mirrors SQL SUM: no matching rows yields an invalid result.
func (s *Store) sumSpend(brandID int64, match func(domain.Date) bool) decimal.NullDecimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum decimal.NullDecimal
	for k, row := range s.spend {
		if !match(k.Date) || s.ads[k.AdID].BrandID != brandID {
			continue
		}
		sum.Decimal = sum.Decimal.Add(row.Spent)
		sum.Valid = true
	}
	return sum
}

func (s *Store) DeactivateBrandAds(_ context.Context, brandID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	now := time.Now().UTC()
	for id, a := range s.ads {
		if a.BrandID == brandID && a.Active {
			a.Active = false
			a.UpdatedAt = now
			s.ads[id] = a
			n++
		}
	}
	return n, nil
}

func (s *Store) ListAdSpend(_ context.Context, adID int64) ([]domain.AdSpend, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.AdSpend
	for k, row := range s.spend {
		if k.AdID == adID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *Store) GetSettings(_ context.Context) (*domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return nil, nil
	}
	cp := *s.settings
	return &cp, nil
}

func (s *Store) SaveSettings(_ context.Context, settings *domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings.UpdatedAt = time.Now().UTC()
	cp := *settings
	s.settings = &cp
	return nil
}
