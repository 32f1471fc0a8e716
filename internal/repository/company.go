package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/gen/ent"
	"github.com/seyi-adeleke/riskscore/gen/ent/company"
	"github.com/seyi-adeleke/riskscore/internal/common"
	"github.com/seyi-adeleke/riskscore/internal/entity"
)

// CompanyRepository resolves companies idempotently by (symbol, scope).
type CompanyRepository interface {
	GetOrCreate(ctx context.Context, in *entity.CompanyInput) (*entity.Company, error)
}

type companyRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCompanyRepository(client *ent.Client, logger *slog.Logger) CompanyRepository {
	return &companyRepository{client: client, logger: logger}
}

// GetOrCreate looks a company up by identity and overwrites its mutable
// fields, inserting it first if absent. Two executors racing on the same
// new symbol can both miss the lookup; the loser's insert hits the unique
// index and is treated as "already created concurrently" - re-fetch, never
// propagate.
func (r *companyRepository) GetOrCreate(ctx context.Context, in *entity.CompanyInput) (*entity.Company, error) {
	symbol := strings.ToUpper(strings.TrimSpace(in.Symbol))

	row, err := r.findByIdentity(ctx, symbol, in.Scope)
	if err != nil {
		return nil, err
	}
	if row != nil {
		return r.updateMutable(ctx, row, in)
	}

	name := in.Name
	if name == "" {
		name = symbol
	}
	created, err := r.client.Company.
		Create().
		SetSymbol(symbol).
		SetName(name).
		SetNillableSector(in.Sector).
		SetNillableMarketCap(in.MarketCap).
		SetScopeType(string(in.Scope.Type)).
		SetScopeID(in.Scope.ScopeID).
		Save(ctx)
	if err == nil {
		return toCompany(created), nil
	}
	if !ent.IsConstraintError(err) {
		r.logger.Error("company insert failed", "symbol", symbol, "error", err)
		return nil, common.WrapError(common.ErrDatabase, "insert company")
	}

	r.logger.Debug("company created concurrently, re-fetching", "symbol", symbol)
	row, err = r.findByIdentity(ctx, symbol, in.Scope)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, common.NewAppError("COMPANY_RACE", "company vanished after conflicting insert", common.ErrDatabase)
	}
	return r.updateMutable(ctx, row, in)
}

func (r *companyRepository) findByIdentity(ctx context.Context, symbol string, scope entity.OwnerScope) (*ent.Company, error) {
	row, err := r.client.Company.
		Query().
		Where(
			company.Symbol(symbol),
			company.ScopeType(string(scope.Type)),
			company.ScopeID(scope.ScopeID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("company lookup failed", "symbol", symbol, "error", err)
		return nil, common.WrapError(common.ErrDatabase, "query company")
	}
	return row, nil
}

func (r *companyRepository) updateMutable(ctx context.Context, row *ent.Company, in *entity.CompanyInput) (*entity.Company, error) {
	upd := row.Update()
	if in.Name != "" {
		upd.SetName(in.Name)
	}
	if in.Sector != nil {
		upd.SetSector(*in.Sector)
	}
	if in.MarketCap != nil {
		upd.SetMarketCap(*in.MarketCap)
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("company update failed", "company_id", row.ID, "error", err)
		return nil, common.WrapError(common.ErrDatabase, "update company")
	}
	return toCompany(updated), nil
}

func toCompany(row *ent.Company) *entity.Company {
	return &entity.Company{
		ID:        row.ID,
		Symbol:    row.Symbol,
		Name:      row.Name,
		Sector:    row.Sector,
		MarketCap: row.MarketCap,
		Scope: entity.OwnerScope{
			Type:    constants.ScopeType(row.ScopeType),
			ScopeID: row.ScopeID,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
