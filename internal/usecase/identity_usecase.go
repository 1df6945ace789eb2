package usecase

import (
	"context"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/pkg/errors"
	"artisanmarket/pkg/logger"
)

// IdentityUseCase resolves a participant id plus a role tag to a display
// identity. The two profile tables are disjoint, so resolution dispatches on
// the tag and runs exactly one scoped lookup; there is no query that joins
// both tables on the same column.
type IdentityUseCase struct {
	customerRepo repository.CustomerRepository
	sellerRepo   repository.SellerRepository
}

func NewIdentityUseCase(
	customerRepo repository.CustomerRepository,
	sellerRepo repository.SellerRepository,
) *IdentityUseCase {
	return &IdentityUseCase{
		customerRepo: customerRepo,
		sellerRepo:   sellerRepo,
	}
}

func (uc *IdentityUseCase) Resolve(ctx context.Context, id string, role entity.Role) (*entity.Identity, error) {
	switch role {
	case entity.RoleCustomer:
		customer, err := uc.customerRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return customer.Identity(), nil
	case entity.RoleSeller:
		seller, err := uc.sellerRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return seller.Identity(), nil
	}

	return nil, errors.BadRequest("Unknown participant role", nil)
}

// ResolveOrPlaceholder degrades a failed resolution to the placeholder
// identity instead of failing the caller; a missing profile must not abort a
// whole thread render.
func (uc *IdentityUseCase) ResolveOrPlaceholder(ctx context.Context, id string, role entity.Role) *entity.Identity {
	identity, err := uc.Resolve(ctx, id, role)
	if err != nil {
		if !errors.IsNotFound(err) {
			logger.Warn("Identity resolution failed for %s %s: %v", role, id, err)
		}
		return entity.UnknownIdentity()
	}
	return identity
}
