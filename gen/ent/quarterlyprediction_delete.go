// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/seyi-adeleke/riskscore/gen/ent/predicate"
	"github.com/seyi-adeleke/riskscore/gen/ent/quarterlyprediction"
)

// QuarterlyPredictionDelete is the builder for deleting a QuarterlyPrediction entity.
type QuarterlyPredictionDelete struct {
	config
	hooks    []Hook
	mutation *QuarterlyPredictionMutation
}

// Where appends a list predicates to the QuarterlyPredictionDelete builder.
func (_d *QuarterlyPredictionDelete) Where(ps ...predicate.QuarterlyPrediction) *QuarterlyPredictionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *QuarterlyPredictionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuarterlyPredictionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *QuarterlyPredictionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(quarterlyprediction.Table, sqlgraph.NewFieldSpec(quarterlyprediction.FieldID, field.TypeUUID))
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

// QuarterlyPredictionDeleteOne is the builder for deleting a single QuarterlyPrediction entity.
type QuarterlyPredictionDeleteOne struct {
	_d *QuarterlyPredictionDelete
}

// Where appends a list predicates to the QuarterlyPredictionDelete builder.
func (_d *QuarterlyPredictionDeleteOne) Where(ps ...predicate.QuarterlyPrediction) *QuarterlyPredictionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *QuarterlyPredictionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{quarterlyprediction.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuarterlyPredictionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
