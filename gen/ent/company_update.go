// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seyi-adeleke/riskscore/gen/ent/annualprediction"
	"github.com/seyi-adeleke/riskscore/gen/ent/company"
	"github.com/seyi-adeleke/riskscore/gen/ent/predicate"
	"github.com/seyi-adeleke/riskscore/gen/ent/quarterlyprediction"
)

// CompanyUpdate is the builder for updating Company entities.
type CompanyUpdate struct {
	config
	hooks    []Hook
	mutation *CompanyMutation
}

// Where appends a list predicates to the CompanyUpdate builder.
func (_u *CompanyUpdate) Where(ps ...predicate.Company) *CompanyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSymbol sets the "symbol" field.
func (_u *CompanyUpdate) SetSymbol(v string) *CompanyUpdate {
	_u.mutation.SetSymbol(v)
	return _u
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableSymbol(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetSymbol(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CompanyUpdate) SetName(v string) *CompanyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableName(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSector sets the "sector" field.
func (_u *CompanyUpdate) SetSector(v string) *CompanyUpdate {
	_u.mutation.SetSector(v)
	return _u
}

// SetNillableSector sets the "sector" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableSector(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetSector(*v)
	}
	return _u
}

// ClearSector clears the value of the "sector" field.
func (_u *CompanyUpdate) ClearSector() *CompanyUpdate {
	_u.mutation.ClearSector()
	return _u
}

// SetMarketCap sets the "market_cap" field.
func (_u *CompanyUpdate) SetMarketCap(v float64) *CompanyUpdate {
	_u.mutation.ResetMarketCap()
	_u.mutation.SetMarketCap(v)
	return _u
}

// SetNillableMarketCap sets the "market_cap" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableMarketCap(v *float64) *CompanyUpdate {
	if v != nil {
		_u.SetMarketCap(*v)
	}
	return _u
}

// AddMarketCap adds value to the "market_cap" field.
func (_u *CompanyUpdate) AddMarketCap(v float64) *CompanyUpdate {
	_u.mutation.AddMarketCap(v)
	return _u
}

// ClearMarketCap clears the value of the "market_cap" field.
func (_u *CompanyUpdate) ClearMarketCap() *CompanyUpdate {
	_u.mutation.ClearMarketCap()
	return _u
}

// SetScopeType sets the "scope_type" field.
func (_u *CompanyUpdate) SetScopeType(v string) *CompanyUpdate {
	_u.mutation.SetScopeType(v)
	return _u
}

// SetNillableScopeType sets the "scope_type" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableScopeType(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetScopeType(*v)
	}
	return _u
}

// SetScopeID sets the "scope_id" field.
func (_u *CompanyUpdate) SetScopeID(v uuid.UUID) *CompanyUpdate {
	_u.mutation.SetScopeID(v)
	return _u
}

// SetNillableScopeID sets the "scope_id" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableScopeID(v *uuid.UUID) *CompanyUpdate {
	if v != nil {
		_u.SetScopeID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CompanyUpdate) SetCreatedAt(v time.Time) *CompanyUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableCreatedAt(v *time.Time) *CompanyUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompanyUpdate) SetUpdatedAt(v time.Time) *CompanyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAnnualPredictionIDs adds the "annual_predictions" edge to the AnnualPrediction entity by IDs.
func (_u *CompanyUpdate) AddAnnualPredictionIDs(ids ...uuid.UUID) *CompanyUpdate {
	_u.mutation.AddAnnualPredictionIDs(ids...)
	return _u
}

// AddAnnualPredictions adds the "annual_predictions" edges to the AnnualPrediction entity.
func (_u *CompanyUpdate) AddAnnualPredictions(v ...*AnnualPrediction) *CompanyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnnualPredictionIDs(ids...)
}

// AddQuarterlyPredictionIDs adds the "quarterly_predictions" edge to the QuarterlyPrediction entity by IDs.
func (_u *CompanyUpdate) AddQuarterlyPredictionIDs(ids ...uuid.UUID) *CompanyUpdate {
	_u.mutation.AddQuarterlyPredictionIDs(ids...)
	return _u
}

// AddQuarterlyPredictions adds the "quarterly_predictions" edges to the QuarterlyPrediction entity.
func (_u *CompanyUpdate) AddQuarterlyPredictions(v ...*QuarterlyPrediction) *CompanyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuarterlyPredictionIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_u *CompanyUpdate) Mutation() *CompanyMutation {
	return _u.mutation
}

// ClearAnnualPredictions clears all "annual_predictions" edges to the AnnualPrediction entity.
func (_u *CompanyUpdate) ClearAnnualPredictions() *CompanyUpdate {
	_u.mutation.ClearAnnualPredictions()
	return _u
}

// RemoveAnnualPredictionIDs removes the "annual_predictions" edge to AnnualPrediction entities by IDs.
func (_u *CompanyUpdate) RemoveAnnualPredictionIDs(ids ...uuid.UUID) *CompanyUpdate {
	_u.mutation.RemoveAnnualPredictionIDs(ids...)
	return _u
}

// RemoveAnnualPredictions removes "annual_predictions" edges to AnnualPrediction entities.
func (_u *CompanyUpdate) RemoveAnnualPredictions(v ...*AnnualPrediction) *CompanyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnnualPredictionIDs(ids...)
}

// ClearQuarterlyPredictions clears all "quarterly_predictions" edges to the QuarterlyPrediction entity.
func (_u *CompanyUpdate) ClearQuarterlyPredictions() *CompanyUpdate {
	_u.mutation.ClearQuarterlyPredictions()
	return _u
}

// RemoveQuarterlyPredictionIDs removes the "quarterly_predictions" edge to QuarterlyPrediction entities by IDs.
func (_u *CompanyUpdate) RemoveQuarterlyPredictionIDs(ids ...uuid.UUID) *CompanyUpdate {
	_u.mutation.RemoveQuarterlyPredictionIDs(ids...)
	return _u
}

// RemoveQuarterlyPredictions removes "quarterly_predictions" edges to QuarterlyPrediction entities.
func (_u *CompanyUpdate) RemoveQuarterlyPredictions(v ...*QuarterlyPrediction) *CompanyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuarterlyPredictionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompanyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompanyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompanyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := company.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyUpdate) check() error {
	if v, ok := _u.mutation.Symbol(); ok {
		if err := company.SymbolValidator(v); err != nil {
			return &ValidationError{Name: "symbol", err: fmt.Errorf(`ent: validator failed for field "Company.symbol": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeType(); ok {
		if err := company.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "Company.scope_type": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(company.Table, company.Columns, sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Symbol(); ok {
		_spec.SetField(company.FieldSymbol, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sector(); ok {
		_spec.SetField(company.FieldSector, field.TypeString, value)
	}
	if _u.mutation.SectorCleared() {
		_spec.ClearField(company.FieldSector, field.TypeString)
	}
	if value, ok := _u.mutation.MarketCap(); ok {
		_spec.SetField(company.FieldMarketCap, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMarketCap(); ok {
		_spec.AddField(company.FieldMarketCap, field.TypeFloat64, value)
	}
	if _u.mutation.MarketCapCleared() {
		_spec.ClearField(company.FieldMarketCap, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ScopeType(); ok {
		_spec.SetField(company.FieldScopeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeID(); ok {
		_spec.SetField(company.FieldScopeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(company.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(company.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AnnualPredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.AnnualPredictionsTable,
			Columns: []string{company.AnnualPredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(annualprediction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnnualPredictionsIDs(); len(nodes) > 0 && !_u.mutation.AnnualPredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.AnnualPredictionsTable,
			Columns: []string{company.AnnualPredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(annualprediction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnnualPredictionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.AnnualPredictionsTable,
			Columns: []string{company.AnnualPredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(annualprediction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuarterlyPredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.QuarterlyPredictionsTable,
			Columns: []string{company.QuarterlyPredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quarterlyprediction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuarterlyPredictionsIDs(); len(nodes) > 0 && !_u.mutation.QuarterlyPredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.QuarterlyPredictionsTable,
			Columns: []string{company.QuarterlyPredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quarterlyprediction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuarterlyPredictionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.QuarterlyPredictionsTable,
			Columns: []string{company.QuarterlyPredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quarterlyprediction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{company.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompanyUpdateOne is the builder for updating a single Company entity.
type CompanyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompanyMutation
}

// SetSymbol sets the "symbol" field.
func (_u *CompanyUpdateOne) SetSymbol(v string) *CompanyUpdateOne {
	_u.mutation.SetSymbol(v)
	return _u
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableSymbol(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetSymbol(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CompanyUpdateOne) SetName(v string) *CompanyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableName(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSector sets the "sector" field.
func (_u *CompanyUpdateOne) SetSector(v string) *CompanyUpdateOne {
	_u.mutation.SetSector(v)
	return _u
}

// SetNillableSector sets the "sector" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableSector(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetSector(*v)
	}
	return _u
}

// ClearSector clears the value of the "sector" field.
func (_u *CompanyUpdateOne) ClearSector() *CompanyUpdateOne {
	_u.mutation.ClearSector()
	return _u
}

// SetMarketCap sets the "market_cap" field.
func (_u *CompanyUpdateOne) SetMarketCap(v float64) *CompanyUpdateOne {
	_u.mutation.ResetMarketCap()
	_u.mutation.SetMarketCap(v)
	return _u
}

// SetNillableMarketCap sets the "market_cap" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableMarketCap(v *float64) *CompanyUpdateOne {
	if v != nil {
		_u.SetMarketCap(*v)
	}
	return _u
}

// AddMarketCap adds value to the "market_cap" field.
func (_u *CompanyUpdateOne) AddMarketCap(v float64) *CompanyUpdateOne {
	_u.mutation.AddMarketCap(v)
	return _u
}

// ClearMarketCap clears the value of the "market_cap" field.
func (_u *CompanyUpdateOne) ClearMarketCap() *CompanyUpdateOne {
	_u.mutation.ClearMarketCap()
	return _u
}

// SetScopeType sets the "scope_type" field.
func (_u *CompanyUpdateOne) SetScopeType(v string) *CompanyUpdateOne {
	_u.mutation.SetScopeType(v)
	return _u
}

// SetNillableScopeType sets the "scope_type" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableScopeType(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetScopeType(*v)
	}
	return _u
}

// SetScopeID sets the "scope_id" field.
func (_u *CompanyUpdateOne) SetScopeID(v uuid.UUID) *CompanyUpdateOne {
	_u.mutation.SetScopeID(v)
	return _u
}

// SetNillableScopeID sets the "scope_id" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableScopeID(v *uuid.UUID) *CompanyUpdateOne {
	if v != nil {
		_u.SetScopeID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CompanyUpdateOne) SetCreatedAt(v time.Time) *CompanyUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableCreatedAt(v *time.Time) *CompanyUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompanyUpdateOne) SetUpdatedAt(v time.Time) *CompanyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAnnualPredictionIDs adds the "annual_predictions" edge to the AnnualPrediction entity by IDs.
func (_u *CompanyUpdateOne) AddAnnualPredictionIDs(ids ...uuid.UUID) *CompanyUpdateOne {
	_u.mutation.AddAnnualPredictionIDs(ids...)
	return _u
}

// AddAnnualPredictions adds the "annual_predictions" edges to the AnnualPrediction entity.
func (_u *CompanyUpdateOne) AddAnnualPredictions(v ...*AnnualPrediction) *CompanyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnnualPredictionIDs(ids...)
}

// AddQuarterlyPredictionIDs adds the "quarterly_predictions" edge to the QuarterlyPrediction entity by IDs.
func (_u *CompanyUpdateOne) AddQuarterlyPredictionIDs(ids ...uuid.UUID) *CompanyUpdateOne {
	_u.mutation.AddQuarterlyPredictionIDs(ids...)
	return _u
}

// AddQuarterlyPredictions adds the "quarterly_predictions" edges to the QuarterlyPrediction entity.
func (_u *CompanyUpdateOne) AddQuarterlyPredictions(v ...*QuarterlyPrediction) *CompanyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuarterlyPredictionIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_u *CompanyUpdateOne) Mutation() *CompanyMutation {
	return _u.mutation
}

// ClearAnnualPredictions clears all "annual_predictions" edges to the AnnualPrediction entity.
func (_u *CompanyUpdateOne) ClearAnnualPredictions() *CompanyUpdateOne {
	_u.mutation.ClearAnnualPredictions()
	return _u
}

// RemoveAnnualPredictionIDs removes the "annual_predictions" edge to AnnualPrediction entities by IDs.
func (_u *CompanyUpdateOne) RemoveAnnualPredictionIDs(ids ...uuid.UUID) *CompanyUpdateOne {
	_u.mutation.RemoveAnnualPredictionIDs(ids...)
	return _u
}

// RemoveAnnualPredictions removes "annual_predictions" edges to AnnualPrediction entities.
func (_u *CompanyUpdateOne) RemoveAnnualPredictions(v ...*AnnualPrediction) *CompanyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnnualPredictionIDs(ids...)
}

// ClearQuarterlyPredictions clears all "quarterly_predictions" edges to the QuarterlyPrediction entity.
func (_u *CompanyUpdateOne) ClearQuarterlyPredictions() *CompanyUpdateOne {
	_u.mutation.ClearQuarterlyPredictions()
	return _u
}

// RemoveQuarterlyPredictionIDs removes the "quarterly_predictions" edge to QuarterlyPrediction entities by IDs.
func (_u *CompanyUpdateOne) RemoveQuarterlyPredictionIDs(ids ...uuid.UUID) *CompanyUpdateOne {
	_u.mutation.RemoveQuarterlyPredictionIDs(ids...)
	return _u
}

// RemoveQuarterlyPredictions removes "quarterly_predictions" edges to QuarterlyPrediction entities.
func (_u *CompanyUpdateOne) RemoveQuarterlyPredictions(v ...*QuarterlyPrediction) *CompanyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuarterlyPredictionIDs(ids...)
}

// Where appends a list predicates to the CompanyUpdate builder.
func (_u *CompanyUpdateOne) Where(ps ...predicate.Company) *CompanyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompanyUpdateOne) Select(field string, fields ...string) *CompanyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Company entity.
func (_u *CompanyUpdateOne) Save(ctx context.Context) (*Company, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyUpdateOne) SaveX(ctx context.Context) *Company {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompanyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompanyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := company.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyUpdateOne) check() error {
	if v, ok := _u.mutation.Symbol(); ok {
		if err := company.SymbolValidator(v); err != nil {
			return &ValidationError{Name: "symbol", err: fmt.Errorf(`ent: validator failed for field "Company.symbol": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeType(); ok {
		if err := company.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "Company.scope_type": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyUpdateOne) sqlSave(ctx context.Context) (_node *Company, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(company.Table, company.Columns, sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Company.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, company.FieldID)
		for _, f := range fields {
			if !company.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != company.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Symbol(); ok {
		_spec.SetField(company.FieldSymbol, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sector(); ok {
		_spec.SetField(company.FieldSector, field.TypeString, value)
	}
	if _u.mutation.SectorCleared() {
		_spec.ClearField(company.FieldSector, field.TypeString)
	}
	if value, ok := _u.mutation.MarketCap(); ok {
		_spec.SetField(company.FieldMarketCap, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMarketCap(); ok {
		_spec.AddField(company.FieldMarketCap, field.TypeFloat64, value)
	}
	if _u.mutation.MarketCapCleared() {
		_spec.ClearField(company.FieldMarketCap, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ScopeType(); ok {
		_spec.SetField(company.FieldScopeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeID(); ok {
		_spec.SetField(company.FieldScopeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(company.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(company.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AnnualPredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.AnnualPredictionsTable,
			Columns: []string{company.AnnualPredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(annualprediction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnnualPredictionsIDs(); len(nodes) > 0 && !_u.mutation.AnnualPredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.AnnualPredictionsTable,
			Columns: []string{company.AnnualPredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(annualprediction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnnualPredictionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.AnnualPredictionsTable,
			Columns: []string{company.AnnualPredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(annualprediction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuarterlyPredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.QuarterlyPredictionsTable,
			Columns: []string{company.QuarterlyPredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quarterlyprediction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuarterlyPredictionsIDs(); len(nodes) > 0 && !_u.mutation.QuarterlyPredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.QuarterlyPredictionsTable,
			Columns: []string{company.QuarterlyPredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quarterlyprediction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuarterlyPredictionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.QuarterlyPredictionsTable,
			Columns: []string{company.QuarterlyPredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quarterlyprediction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Company{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{company.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
