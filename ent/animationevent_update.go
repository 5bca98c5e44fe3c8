// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nkurella/manimate/ent/animationevent"
	"github.com/nkurella/manimate/ent/predicate"
)

// AnimationEventUpdate is the builder for updating AnimationEvent entities.
type AnimationEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnimationEventMutation
}

// Where appends a list predicates to the AnimationEventUpdate builder.
func (_u *AnimationEventUpdate) Where(ps ...predicate.AnimationEvent) *AnimationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AnimationEventUpdate) SetTopic(v string) *AnimationEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AnimationEventUpdate) SetNillableTopic(v *string) *AnimationEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AnimationEventUpdate) SetKind(v string) *AnimationEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AnimationEventUpdate) SetNillableKind(v *string) *AnimationEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AnimationEventUpdate) SetSuccess(v bool) *AnimationEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AnimationEventUpdate) SetNillableSuccess(v *bool) *AnimationEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetSceneName sets the "scene_name" field.
func (_u *AnimationEventUpdate) SetSceneName(v string) *AnimationEventUpdate {
	_u.mutation.SetSceneName(v)
	return _u
}

// SetNillableSceneName sets the "scene_name" field if the given value is not nil.
func (_u *AnimationEventUpdate) SetNillableSceneName(v *string) *AnimationEventUpdate {
	if v != nil {
		_u.SetSceneName(*v)
	}
	return _u
}

// SetOutputPath sets the "output_path" field.
func (_u *AnimationEventUpdate) SetOutputPath(v string) *AnimationEventUpdate {
	_u.mutation.SetOutputPath(v)
	return _u
}

// SetNillableOutputPath sets the "output_path" field if the given value is not nil.
func (_u *AnimationEventUpdate) SetNillableOutputPath(v *string) *AnimationEventUpdate {
	if v != nil {
		_u.SetOutputPath(*v)
	}
	return _u
}

// SetGenerationAttempts sets the "generation_attempts" field.
func (_u *AnimationEventUpdate) SetGenerationAttempts(v int) *AnimationEventUpdate {
	_u.mutation.ResetGenerationAttempts()
	_u.mutation.SetGenerationAttempts(v)
	return _u
}

// SetNillableGenerationAttempts sets the "generation_attempts" field if the given value is not nil.
func (_u *AnimationEventUpdate) SetNillableGenerationAttempts(v *int) *AnimationEventUpdate {
	if v != nil {
		_u.SetGenerationAttempts(*v)
	}
	return _u
}

// AddGenerationAttempts adds value to the "generation_attempts" field.
func (_u *AnimationEventUpdate) AddGenerationAttempts(v int) *AnimationEventUpdate {
	_u.mutation.AddGenerationAttempts(v)
	return _u
}

// SetRenderAttempts sets the "render_attempts" field.
func (_u *AnimationEventUpdate) SetRenderAttempts(v int) *AnimationEventUpdate {
	_u.mutation.ResetRenderAttempts()
	_u.mutation.SetRenderAttempts(v)
	return _u
}

// SetNillableRenderAttempts sets the "render_attempts" field if the given value is not nil.
func (_u *AnimationEventUpdate) SetNillableRenderAttempts(v *int) *AnimationEventUpdate {
	if v != nil {
		_u.SetRenderAttempts(*v)
	}
	return _u
}

// AddRenderAttempts adds value to the "render_attempts" field.
func (_u *AnimationEventUpdate) AddRenderAttempts(v int) *AnimationEventUpdate {
	_u.mutation.AddRenderAttempts(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *AnimationEventUpdate) SetTotalAttempts(v int) *AnimationEventUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *AnimationEventUpdate) SetNillableTotalAttempts(v *int) *AnimationEventUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *AnimationEventUpdate) AddTotalAttempts(v int) *AnimationEventUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetRenderSeconds sets the "render_seconds" field.
func (_u *AnimationEventUpdate) SetRenderSeconds(v float64) *AnimationEventUpdate {
	_u.mutation.ResetRenderSeconds()
	_u.mutation.SetRenderSeconds(v)
	return _u
}

// SetNillableRenderSeconds sets the "render_seconds" field if the given value is not nil.
func (_u *AnimationEventUpdate) SetNillableRenderSeconds(v *float64) *AnimationEventUpdate {
	if v != nil {
		_u.SetRenderSeconds(*v)
	}
	return _u
}

// AddRenderSeconds adds value to the "render_seconds" field.
func (_u *AnimationEventUpdate) AddRenderSeconds(v float64) *AnimationEventUpdate {
	_u.mutation.AddRenderSeconds(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnimationEventUpdate) SetErrorMessage(v string) *AnimationEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnimationEventUpdate) SetNillableErrorMessage(v *string) *AnimationEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *AnimationEventUpdate) SetCode(v string) *AnimationEventUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *AnimationEventUpdate) SetNillableCode(v *string) *AnimationEventUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// Mutation returns the AnimationEventMutation object of the builder.
func (_u *AnimationEventUpdate) Mutation() *AnimationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnimationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnimationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnimationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnimationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnimationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(animationevent.Table, animationevent.Columns, sqlgraph.NewFieldSpec(animationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(animationevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(animationevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(animationevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SceneName(); ok {
		_spec.SetField(animationevent.FieldSceneName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputPath(); ok {
		_spec.SetField(animationevent.FieldOutputPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.GenerationAttempts(); ok {
		_spec.SetField(animationevent.FieldGenerationAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationAttempts(); ok {
		_spec.AddField(animationevent.FieldGenerationAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RenderAttempts(); ok {
		_spec.SetField(animationevent.FieldRenderAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRenderAttempts(); ok {
		_spec.AddField(animationevent.FieldRenderAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(animationevent.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(animationevent.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RenderSeconds(); ok {
		_spec.SetField(animationevent.FieldRenderSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRenderSeconds(); ok {
		_spec.AddField(animationevent.FieldRenderSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(animationevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(animationevent.FieldCode, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{animationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnimationEventUpdateOne is the builder for updating a single AnimationEvent entity.
type AnimationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnimationEventMutation
}

// SetTopic sets the "topic" field.
func (_u *AnimationEventUpdateOne) SetTopic(v string) *AnimationEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AnimationEventUpdateOne) SetNillableTopic(v *string) *AnimationEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AnimationEventUpdateOne) SetKind(v string) *AnimationEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AnimationEventUpdateOne) SetNillableKind(v *string) *AnimationEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AnimationEventUpdateOne) SetSuccess(v bool) *AnimationEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AnimationEventUpdateOne) SetNillableSuccess(v *bool) *AnimationEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetSceneName sets the "scene_name" field.
func (_u *AnimationEventUpdateOne) SetSceneName(v string) *AnimationEventUpdateOne {
	_u.mutation.SetSceneName(v)
	return _u
}

// SetNillableSceneName sets the "scene_name" field if the given value is not nil.
func (_u *AnimationEventUpdateOne) SetNillableSceneName(v *string) *AnimationEventUpdateOne {
	if v != nil {
		_u.SetSceneName(*v)
	}
	return _u
}

// SetOutputPath sets the "output_path" field.
func (_u *AnimationEventUpdateOne) SetOutputPath(v string) *AnimationEventUpdateOne {
	_u.mutation.SetOutputPath(v)
	return _u
}

// SetNillableOutputPath sets the "output_path" field if the given value is not nil.
func (_u *AnimationEventUpdateOne) SetNillableOutputPath(v *string) *AnimationEventUpdateOne {
	if v != nil {
		_u.SetOutputPath(*v)
	}
	return _u
}

// SetGenerationAttempts sets the "generation_attempts" field.
func (_u *AnimationEventUpdateOne) SetGenerationAttempts(v int) *AnimationEventUpdateOne {
	_u.mutation.ResetGenerationAttempts()
	_u.mutation.SetGenerationAttempts(v)
	return _u
}

// SetNillableGenerationAttempts sets the "generation_attempts" field if the given value is not nil.
func (_u *AnimationEventUpdateOne) SetNillableGenerationAttempts(v *int) *AnimationEventUpdateOne {
	if v != nil {
		_u.SetGenerationAttempts(*v)
	}
	return _u
}

// AddGenerationAttempts adds value to the "generation_attempts" field.
func (_u *AnimationEventUpdateOne) AddGenerationAttempts(v int) *AnimationEventUpdateOne {
	_u.mutation.AddGenerationAttempts(v)
	return _u
}

// SetRenderAttempts sets the "render_attempts" field.
func (_u *AnimationEventUpdateOne) SetRenderAttempts(v int) *AnimationEventUpdateOne {
	_u.mutation.ResetRenderAttempts()
	_u.mutation.SetRenderAttempts(v)
	return _u
}

// SetNillableRenderAttempts sets the "render_attempts" field if the given value is not nil.
func (_u *AnimationEventUpdateOne) SetNillableRenderAttempts(v *int) *AnimationEventUpdateOne {
	if v != nil {
		_u.SetRenderAttempts(*v)
	}
	return _u
}

// AddRenderAttempts adds value to the "render_attempts" field.
func (_u *AnimationEventUpdateOne) AddRenderAttempts(v int) *AnimationEventUpdateOne {
	_u.mutation.AddRenderAttempts(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *AnimationEventUpdateOne) SetTotalAttempts(v int) *AnimationEventUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *AnimationEventUpdateOne) SetNillableTotalAttempts(v *int) *AnimationEventUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *AnimationEventUpdateOne) AddTotalAttempts(v int) *AnimationEventUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetRenderSeconds sets the "render_seconds" field.
func (_u *AnimationEventUpdateOne) SetRenderSeconds(v float64) *AnimationEventUpdateOne {
	_u.mutation.ResetRenderSeconds()
	_u.mutation.SetRenderSeconds(v)
	return _u
}

// SetNillableRenderSeconds sets the "render_seconds" field if the given value is not nil.
func (_u *AnimationEventUpdateOne) SetNillableRenderSeconds(v *float64) *AnimationEventUpdateOne {
	if v != nil {
		_u.SetRenderSeconds(*v)
	}
	return _u
}

// AddRenderSeconds adds value to the "render_seconds" field.
func (_u *AnimationEventUpdateOne) AddRenderSeconds(v float64) *AnimationEventUpdateOne {
	_u.mutation.AddRenderSeconds(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnimationEventUpdateOne) SetErrorMessage(v string) *AnimationEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnimationEventUpdateOne) SetNillableErrorMessage(v *string) *AnimationEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *AnimationEventUpdateOne) SetCode(v string) *AnimationEventUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *AnimationEventUpdateOne) SetNillableCode(v *string) *AnimationEventUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// Mutation returns the AnimationEventMutation object of the builder.
func (_u *AnimationEventUpdateOne) Mutation() *AnimationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnimationEventUpdate builder.
func (_u *AnimationEventUpdateOne) Where(ps ...predicate.AnimationEvent) *AnimationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnimationEventUpdateOne) Select(field string, fields ...string) *AnimationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnimationEvent entity.
func (_u *AnimationEventUpdateOne) Save(ctx context.Context) (*AnimationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnimationEventUpdateOne) SaveX(ctx context.Context) *AnimationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnimationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnimationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnimationEventUpdateOne) sqlSave(ctx context.Context) (_node *AnimationEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(animationevent.Table, animationevent.Columns, sqlgraph.NewFieldSpec(animationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnimationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, animationevent.FieldID)
		for _, f := range fields {
			if !animationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != animationevent.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(animationevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(animationevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(animationevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SceneName(); ok {
		_spec.SetField(animationevent.FieldSceneName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputPath(); ok {
		_spec.SetField(animationevent.FieldOutputPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.GenerationAttempts(); ok {
		_spec.SetField(animationevent.FieldGenerationAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationAttempts(); ok {
		_spec.AddField(animationevent.FieldGenerationAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RenderAttempts(); ok {
		_spec.SetField(animationevent.FieldRenderAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRenderAttempts(); ok {
		_spec.AddField(animationevent.FieldRenderAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(animationevent.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(animationevent.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RenderSeconds(); ok {
		_spec.SetField(animationevent.FieldRenderSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRenderSeconds(); ok {
		_spec.AddField(animationevent.FieldRenderSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(animationevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(animationevent.FieldCode, field.TypeString, value)
	}
	_node = &AnimationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{animationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
