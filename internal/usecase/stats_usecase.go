package usecase

import (
	"context"
	"sync"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/pkg/logger"
)

// MarketplaceStats is recomputed from normalized rows on every call; nothing
// here is persisted. Incomplete names the counters that failed and were
// defaulted to zero.
type MarketplaceStats struct {
	ActiveSellers       int64    `json:"active_sellers"`
	RegisteredCustomers int64    `json:"registered_customers"`
	UnitsSold           int64    `json:"units_sold"`
	Incomplete          []string `json:"incomplete,omitempty"`
}

type StatsUseCase struct {
	customerRepo repository.CustomerRepository
	sellerRepo   repository.SellerRepository
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository

	// Stricter "active seller" definition: approval plus at least one
	// listing. Off by default; approval status alone is the documented
	// meaning.
	requireListing bool
}

func NewStatsUseCase(
	customerRepo repository.CustomerRepository,
	sellerRepo repository.SellerRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	requireListing bool,
) *StatsUseCase {
	return &StatsUseCase{
		customerRepo:   customerRepo,
		sellerRepo:     sellerRepo,
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		requireListing: requireListing,
	}
}

// ComputeMarketplaceStats fans the three independent counters out
// concurrently and joins once all settle. A failed counter reports its zero
// value and is flagged in Incomplete; it never cancels its siblings and never
// fails the whole call.
func (uc *StatsUseCase) ComputeMarketplaceStats(ctx context.Context) (*MarketplaceStats, error) {
	var (
		wg sync.WaitGroup

		activeSellers, registeredCustomers, unitsSold int64
		sellersErr, customersErr, unitsErr            error
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		activeSellers, sellersErr = uc.countActiveSellers(ctx)
	}()

	go func() {
		defer wg.Done()
		registeredCustomers, customersErr = uc.customerRepo.Count(ctx)
	}()

	go func() {
		defer wg.Done()
		unitsSold, unitsErr = uc.countUnitsSold(ctx)
	}()

	wg.Wait()

	stats := &MarketplaceStats{
		ActiveSellers:       activeSellers,
		RegisteredCustomers: registeredCustomers,
		UnitsSold:           unitsSold,
	}

	if sellersErr != nil {
		logger.Error("Stats: active-seller count failed, defaulting to 0: %v", sellersErr)
		stats.ActiveSellers = 0
		stats.Incomplete = append(stats.Incomplete, "active_sellers")
	}
	if customersErr != nil {
		logger.Error("Stats: customer count failed, defaulting to 0: %v", customersErr)
		stats.RegisteredCustomers = 0
		stats.Incomplete = append(stats.Incomplete, "registered_customers")
	}
	if unitsErr != nil {
		logger.Error("Stats: units-sold sum failed, defaulting to 0: %v", unitsErr)
		stats.UnitsSold = 0
		stats.Incomplete = append(stats.Incomplete, "units_sold")
	}

	return stats, nil
}

func (uc *StatsUseCase) countActiveSellers(ctx context.Context) (int64, error) {
	if !uc.requireListing {
		return uc.sellerRepo.CountByStatus(ctx, entity.SellerStatusApproved)
	}

	approved, err := uc.sellerRepo.ListIDsByStatus(ctx, entity.SellerStatusApproved)
	if err != nil {
		return 0, err
	}

	listed, err := uc.productRepo.ListActiveSellerIDs(ctx)
	if err != nil {
		return 0, err
	}

	hasListing := make(map[string]struct{}, len(listed))
	for _, id := range listed {
		hasListing[id] = struct{}{}
	}

	var count int64
	for _, id := range approved {
		if _, ok := hasListing[id]; ok {
			count++
		}
	}
	return count, nil
}

func (uc *StatsUseCase) countUnitsSold(ctx context.Context) (int64, error) {
	delivered, err := uc.orderRepo.ListIDsByStatus(ctx, entity.OrderStatusDelivered)
	if err != nil {
		return 0, err
	}
	if len(delivered) == 0 {
		return 0, nil
	}

	return uc.orderRepo.SumItemQuantities(ctx, delivered)
}
