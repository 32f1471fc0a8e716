package bulk

import (
	"context"
	"strings"

	"github.com/seyi-adeleke/riskscore/internal/entity"
	"github.com/seyi-adeleke/riskscore/internal/repository"
)

// CompanyResolver performs idempotent get-or-create for the companies a
// chunk's rows reference. One resolver serves one chunk execution; the
// memo cache keeps repeated symbols within a chunk to a single upsert.
// Not safe for concurrent use - chunks never share a resolver.
type CompanyResolver struct {
	companies repository.CompanyRepository
	scope     entity.OwnerScope
	cache     map[string]*entity.Company
}

func NewCompanyResolver(companies repository.CompanyRepository, scope entity.OwnerScope) *CompanyResolver {
	return &CompanyResolver{
		companies: companies,
		scope:     scope,
		cache:     map[string]*entity.Company{},
	}
}

// Resolve normalizes the row's symbol and returns the company it belongs
// to, creating it when first seen. Mutable attributes (name, sector,
// market cap) are overwritten on repeat resolution.
func (r *CompanyResolver) Resolve(ctx context.Context, row *entity.UploadRow) (*entity.Company, error) {
	symbol := strings.ToUpper(strings.TrimSpace(row.Symbol))
	if c, ok := r.cache[symbol]; ok {
		return c, nil
	}

	in := &entity.CompanyInput{
		Symbol:    symbol,
		Name:      strings.TrimSpace(row.Name),
		MarketCap: row.MarketCap,
		Scope:     r.scope,
	}
	if s := strings.TrimSpace(row.Sector); s != "" {
		in.Sector = &s
	}
	company, err := r.companies.GetOrCreate(ctx, in)
	if err != nil {
		return nil, err
	}
	r.cache[symbol] = company
	return company, nil
}
