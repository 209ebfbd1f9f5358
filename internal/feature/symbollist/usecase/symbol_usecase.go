// Package usecase implements the business logic for symbol catalog operations.
package usecase

import (
	"context"
	"errors"
	"strings"

	"stock_predictor/internal/feature/symbollist/domain/entity"
)

// SymbolRepository abstracts the persistence layer for the symbol catalog.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	// FindByCode returns ErrSymbolNotFound when the code is not in the catalog.
	FindByCode(ctx context.Context, code string) (*entity.Symbol, error)
	UpsertBatch(ctx context.Context, symbols []entity.Symbol) error
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols returns all active symbols from the repository.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// BasePrice looks up the fixed base price of code, case-insensitively.
// Unknown or inactive codes report ok=false without an error.
func (u *SymbolUsecase) BasePrice(ctx context.Context, code string) (float64, bool, error) {
	s, err := u.repo.FindByCode(ctx, NormalizeCode(code))
	if errors.Is(err, ErrSymbolNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if !s.IsActive {
		return 0, false, nil
	}
	return s.BasePrice, true, nil
}

// Seed upserts symbols into the catalog. Codes are normalized to upper case.
func (u *SymbolUsecase) Seed(ctx context.Context, symbols []entity.Symbol) error {
	out := make([]entity.Symbol, 0, len(symbols))
	for _, s := range symbols {
		s.Code = NormalizeCode(s.Code)
		if s.Code == "" {
			continue
		}
		out = append(out, s)
	}
	return u.repo.UpsertBatch(ctx, out)
}

// NormalizeCode trims and upper-cases a ticker code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
