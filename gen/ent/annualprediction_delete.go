// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/seyi-adeleke/riskscore/gen/ent/annualprediction"
	"github.com/seyi-adeleke/riskscore/gen/ent/predicate"
)

// AnnualPredictionDelete is the builder for deleting a AnnualPrediction entity.
type AnnualPredictionDelete struct {
	config
	hooks    []Hook
	mutation *AnnualPredictionMutation
}

// Where appends a list predicates to the AnnualPredictionDelete builder.
func (_d *AnnualPredictionDelete) Where(ps ...predicate.AnnualPrediction) *AnnualPredictionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnnualPredictionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnnualPredictionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnnualPredictionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(annualprediction.Table, sqlgraph.NewFieldSpec(annualprediction.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AnnualPredictionDeleteOne is the builder for deleting a single AnnualPrediction entity.
type AnnualPredictionDeleteOne struct {
	_d *AnnualPredictionDelete
}

// Where appends a list predicates to the AnnualPredictionDelete builder.
func (_d *AnnualPredictionDeleteOne) Where(ps ...predicate.AnnualPrediction) *AnnualPredictionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnnualPredictionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{annualprediction.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnnualPredictionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
