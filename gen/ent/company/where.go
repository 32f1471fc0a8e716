// Code generated by ent, DO NOT EDIT.

package company

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/seyi-adeleke/riskscore/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldID, id))
}

// Symbol applies equality check predicate on the "symbol" field. It's identical to SymbolEQ.
func Symbol(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldSymbol, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldName, v))
}

// Sector applies equality check predicate on the "sector" field. It's identical to SectorEQ.
func Sector(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldSector, v))
}

// MarketCap applies equality check predicate on the "market_cap" field. It's identical to MarketCapEQ.
func MarketCap(v float64) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldMarketCap, v))
}

// ScopeType applies equality check predicate on the "scope_type" field. It's identical to ScopeTypeEQ.
func ScopeType(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldScopeType, v))
}

// ScopeID applies equality check predicate on the "scope_id" field. It's identical to ScopeIDEQ.
func ScopeID(v uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldScopeID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldUpdatedAt, v))
}

// SymbolEQ applies the EQ predicate on the "symbol" field.
func SymbolEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldSymbol, v))
}

// SymbolNEQ applies the NEQ predicate on the "symbol" field.
func SymbolNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldSymbol, v))
}

// SymbolIn applies the In predicate on the "symbol" field.
func SymbolIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldSymbol, vs...))
}

// SymbolNotIn applies the NotIn predicate on the "symbol" field.
func SymbolNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldSymbol, vs...))
}

// SymbolGT applies the GT predicate on the "symbol" field.
func SymbolGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldSymbol, v))
}

// SymbolGTE applies the GTE predicate on the "symbol" field.
func SymbolGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldSymbol, v))
}

// SymbolLT applies the LT predicate on the "symbol" field.
func SymbolLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldSymbol, v))
}

// SymbolLTE applies the LTE predicate on the "symbol" field.
func SymbolLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldSymbol, v))
}

// SymbolContains applies the Contains predicate on the "symbol" field.
func SymbolContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldSymbol, v))
}

// SymbolHasPrefix applies the HasPrefix predicate on the "symbol" field.
func SymbolHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldSymbol, v))
}

// SymbolHasSuffix applies the HasSuffix predicate on the "symbol" field.
func SymbolHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldSymbol, v))
}

// SymbolEqualFold applies the EqualFold predicate on the "symbol" field.
func SymbolEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldSymbol, v))
}

// SymbolContainsFold applies the ContainsFold predicate on the "symbol" field.
func SymbolContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldSymbol, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldName, v))
}

// SectorEQ applies the EQ predicate on the "sector" field.
func SectorEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldSector, v))
}

// SectorNEQ applies the NEQ predicate on the "sector" field.
func SectorNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldSector, v))
}

// SectorIn applies the In predicate on the "sector" field.
func SectorIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldSector, vs...))
}

// SectorNotIn applies the NotIn predicate on the "sector" field.
func SectorNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldSector, vs...))
}

// SectorGT applies the GT predicate on the "sector" field.
func SectorGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldSector, v))
}

// SectorGTE applies the GTE predicate on the "sector" field.
func SectorGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldSector, v))
}

// SectorLT applies the LT predicate on the "sector" field.
func SectorLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldSector, v))
}

// SectorLTE applies the LTE predicate on the "sector" field.
func SectorLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldSector, v))
}

// SectorContains applies the Contains predicate on the "sector" field.
func SectorContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldSector, v))
}

// SectorHasPrefix applies the HasPrefix predicate on the "sector" field.
func SectorHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldSector, v))
}

// SectorHasSuffix applies the HasSuffix predicate on the "sector" field.
func SectorHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldSector, v))
}

// SectorIsNil applies the IsNil predicate on the "sector" field.
func SectorIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldSector))
}

// SectorNotNil applies the NotNil predicate on the "sector" field.
func SectorNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldSector))
}

// SectorEqualFold applies the EqualFold predicate on the "sector" field.
func SectorEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldSector, v))
}

// SectorContainsFold applies the ContainsFold predicate on the "sector" field.
func SectorContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldSector, v))
}

// MarketCapEQ applies the EQ predicate on the "market_cap" field.
func MarketCapEQ(v float64) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldMarketCap, v))
}

// MarketCapNEQ applies the NEQ predicate on the "market_cap" field.
func MarketCapNEQ(v float64) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldMarketCap, v))
}

// MarketCapIn applies the In predicate on the "market_cap" field.
func MarketCapIn(vs ...float64) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldMarketCap, vs...))
}

// MarketCapNotIn applies the NotIn predicate on the "market_cap" field.
func MarketCapNotIn(vs ...float64) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldMarketCap, vs...))
}

// MarketCapGT applies the GT predicate on the "market_cap" field.
func MarketCapGT(v float64) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldMarketCap, v))
}

// MarketCapGTE applies the GTE predicate on the "market_cap" field.
func MarketCapGTE(v float64) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldMarketCap, v))
}

// MarketCapLT applies the LT predicate on the "market_cap" field.
func MarketCapLT(v float64) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldMarketCap, v))
}

// MarketCapLTE applies the LTE predicate on the "market_cap" field.
func MarketCapLTE(v float64) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldMarketCap, v))
}

// MarketCapIsNil applies the IsNil predicate on the "market_cap" field.
func MarketCapIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldMarketCap))
}

// MarketCapNotNil applies the NotNil predicate on the "market_cap" field.
func MarketCapNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldMarketCap))
}

// ScopeTypeEQ applies the EQ predicate on the "scope_type" field.
func ScopeTypeEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldScopeType, v))
}

// ScopeTypeNEQ applies the NEQ predicate on the "scope_type" field.
func ScopeTypeNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldScopeType, v))
}

// ScopeTypeIn applies the In predicate on the "scope_type" field.
func ScopeTypeIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldScopeType, vs...))
}

// ScopeTypeNotIn applies the NotIn predicate on the "scope_type" field.
func ScopeTypeNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldScopeType, vs...))
}

// ScopeTypeGT applies the GT predicate on the "scope_type" field.
func ScopeTypeGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldScopeType, v))
}

// ScopeTypeGTE applies the GTE predicate on the "scope_type" field.
func ScopeTypeGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldScopeType, v))
}

// ScopeTypeLT applies the LT predicate on the "scope_type" field.
func ScopeTypeLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldScopeType, v))
}

// ScopeTypeLTE applies the LTE predicate on the "scope_type" field.
func ScopeTypeLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldScopeType, v))
}

// ScopeTypeContains applies the Contains predicate on the "scope_type" field.
func ScopeTypeContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldScopeType, v))
}

// ScopeTypeHasPrefix applies the HasPrefix predicate on the "scope_type" field.
func ScopeTypeHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldScopeType, v))
}

// ScopeTypeHasSuffix applies the HasSuffix predicate on the "scope_type" field.
func ScopeTypeHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldScopeType, v))
}

// ScopeTypeEqualFold applies the EqualFold predicate on the "scope_type" field.
func ScopeTypeEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldScopeType, v))
}

// ScopeTypeContainsFold applies the ContainsFold predicate on the "scope_type" field.
func ScopeTypeContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldScopeType, v))
}

// ScopeIDEQ applies the EQ predicate on the "scope_id" field.
func ScopeIDEQ(v uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldScopeID, v))
}

// ScopeIDNEQ applies the NEQ predicate on the "scope_id" field.
func ScopeIDNEQ(v uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldScopeID, v))
}

// ScopeIDIn applies the In predicate on the "scope_id" field.
func ScopeIDIn(vs ...uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldScopeID, vs...))
}

// ScopeIDNotIn applies the NotIn predicate on the "scope_id" field.
func ScopeIDNotIn(vs ...uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldScopeID, vs...))
}

// ScopeIDGT applies the GT predicate on the "scope_id" field.
func ScopeIDGT(v uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldScopeID, v))
}

// ScopeIDGTE applies the GTE predicate on the "scope_id" field.
func ScopeIDGTE(v uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldScopeID, v))
}

// ScopeIDLT applies the LT predicate on the "scope_id" field.
func ScopeIDLT(v uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldScopeID, v))
}

// ScopeIDLTE applies the LTE predicate on the "scope_id" field.
func ScopeIDLTE(v uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldScopeID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAnnualPredictions applies the HasEdge predicate on the "annual_predictions" edge.
func HasAnnualPredictions() predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnnualPredictionsTable, AnnualPredictionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnnualPredictionsWith applies the HasEdge predicate on the "annual_predictions" edge with a given conditions (other predicates).
func HasAnnualPredictionsWith(preds ...predicate.AnnualPrediction) predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := newAnnualPredictionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuarterlyPredictions applies the HasEdge predicate on the "quarterly_predictions" edge.
func HasQuarterlyPredictions() predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuarterlyPredictionsTable, QuarterlyPredictionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuarterlyPredictionsWith applies the HasEdge predicate on the "quarterly_predictions" edge with a given conditions (other predicates).
func HasQuarterlyPredictionsWith(preds ...predicate.QuarterlyPrediction) predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := newQuarterlyPredictionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Company) predicate.Company {
	return predicate.Company(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Company) predicate.Company {
	return predicate.Company(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Company) predicate.Company {
	return predicate.Company(sql.NotPredicates(p))
}
