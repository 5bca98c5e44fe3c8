// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nkurella/manimate/ent/animationevent"
)

// AnimationEventCreate is the builder for creating a AnimationEvent entity.
type AnimationEventCreate struct {
	config
	mutation *AnimationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnimationEventCreate) SetSequence(v int64) *AnimationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnimationEventCreate) SetTimestamp(v time.Time) *AnimationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnimationEventCreate) SetNillableTimestamp(v *time.Time) *AnimationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *AnimationEventCreate) SetTopic(v string) *AnimationEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *AnimationEventCreate) SetKind(v string) *AnimationEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *AnimationEventCreate) SetSuccess(v bool) *AnimationEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetSceneName sets the "scene_name" field.
func (_c *AnimationEventCreate) SetSceneName(v string) *AnimationEventCreate {
	_c.mutation.SetSceneName(v)
	return _c
}

// SetNillableSceneName sets the "scene_name" field if the given value is not nil.
func (_c *AnimationEventCreate) SetNillableSceneName(v *string) *AnimationEventCreate {
	if v != nil {
		_c.SetSceneName(*v)
	}
	return _c
}

// SetOutputPath sets the "output_path" field.
func (_c *AnimationEventCreate) SetOutputPath(v string) *AnimationEventCreate {
	_c.mutation.SetOutputPath(v)
	return _c
}

// SetNillableOutputPath sets the "output_path" field if the given value is not nil.
func (_c *AnimationEventCreate) SetNillableOutputPath(v *string) *AnimationEventCreate {
	if v != nil {
		_c.SetOutputPath(*v)
	}
	return _c
}

// SetGenerationAttempts sets the "generation_attempts" field.
func (_c *AnimationEventCreate) SetGenerationAttempts(v int) *AnimationEventCreate {
	_c.mutation.SetGenerationAttempts(v)
	return _c
}

// SetNillableGenerationAttempts sets the "generation_attempts" field if the given value is not nil.
func (_c *AnimationEventCreate) SetNillableGenerationAttempts(v *int) *AnimationEventCreate {
	if v != nil {
		_c.SetGenerationAttempts(*v)
	}
	return _c
}

// SetRenderAttempts sets the "render_attempts" field.
func (_c *AnimationEventCreate) SetRenderAttempts(v int) *AnimationEventCreate {
	_c.mutation.SetRenderAttempts(v)
	return _c
}

// SetNillableRenderAttempts sets the "render_attempts" field if the given value is not nil.
func (_c *AnimationEventCreate) SetNillableRenderAttempts(v *int) *AnimationEventCreate {
	if v != nil {
		_c.SetRenderAttempts(*v)
	}
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *AnimationEventCreate) SetTotalAttempts(v int) *AnimationEventCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_c *AnimationEventCreate) SetNillableTotalAttempts(v *int) *AnimationEventCreate {
	if v != nil {
		_c.SetTotalAttempts(*v)
	}
	return _c
}

// SetRenderSeconds sets the "render_seconds" field.
func (_c *AnimationEventCreate) SetRenderSeconds(v float64) *AnimationEventCreate {
	_c.mutation.SetRenderSeconds(v)
	return _c
}

// SetNillableRenderSeconds sets the "render_seconds" field if the given value is not nil.
func (_c *AnimationEventCreate) SetNillableRenderSeconds(v *float64) *AnimationEventCreate {
	if v != nil {
		_c.SetRenderSeconds(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnimationEventCreate) SetErrorMessage(v string) *AnimationEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnimationEventCreate) SetNillableErrorMessage(v *string) *AnimationEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCode sets the "code" field.
func (_c *AnimationEventCreate) SetCode(v string) *AnimationEventCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_c *AnimationEventCreate) SetNillableCode(v *string) *AnimationEventCreate {
	if v != nil {
		_c.SetCode(*v)
	}
	return _c
}

// Mutation returns the AnimationEventMutation object of the builder.
func (_c *AnimationEventCreate) Mutation() *AnimationEventMutation {
	return _c.mutation
}

// Save creates the AnimationEvent in the database.
func (_c *AnimationEventCreate) Save(ctx context.Context) (*AnimationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnimationEventCreate) SaveX(ctx context.Context) *AnimationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnimationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnimationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnimationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := animationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SceneName(); !ok {
		v := animationevent.DefaultSceneName
		_c.mutation.SetSceneName(v)
	}
	if _, ok := _c.mutation.OutputPath(); !ok {
		v := animationevent.DefaultOutputPath
		_c.mutation.SetOutputPath(v)
	}
	if _, ok := _c.mutation.GenerationAttempts(); !ok {
		v := animationevent.DefaultGenerationAttempts
		_c.mutation.SetGenerationAttempts(v)
	}
	if _, ok := _c.mutation.RenderAttempts(); !ok {
		v := animationevent.DefaultRenderAttempts
		_c.mutation.SetRenderAttempts(v)
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		v := animationevent.DefaultTotalAttempts
		_c.mutation.SetTotalAttempts(v)
	}
	if _, ok := _c.mutation.RenderSeconds(); !ok {
		v := animationevent.DefaultRenderSeconds
		_c.mutation.SetRenderSeconds(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := animationevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
	if _, ok := _c.mutation.Code(); !ok {
		v := animationevent.DefaultCode
		_c.mutation.SetCode(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnimationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnimationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnimationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "AnimationEvent.topic"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "AnimationEvent.kind"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "AnimationEvent.success"`)}
	}
	if _, ok := _c.mutation.SceneName(); !ok {
		return &ValidationError{Name: "scene_name", err: errors.New(`ent: missing required field "AnimationEvent.scene_name"`)}
	}
	if _, ok := _c.mutation.OutputPath(); !ok {
		return &ValidationError{Name: "output_path", err: errors.New(`ent: missing required field "AnimationEvent.output_path"`)}
	}
	if _, ok := _c.mutation.GenerationAttempts(); !ok {
		return &ValidationError{Name: "generation_attempts", err: errors.New(`ent: missing required field "AnimationEvent.generation_attempts"`)}
	}
	if _, ok := _c.mutation.RenderAttempts(); !ok {
		return &ValidationError{Name: "render_attempts", err: errors.New(`ent: missing required field "AnimationEvent.render_attempts"`)}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "AnimationEvent.total_attempts"`)}
	}
	if _, ok := _c.mutation.RenderSeconds(); !ok {
		return &ValidationError{Name: "render_seconds", err: errors.New(`ent: missing required field "AnimationEvent.render_seconds"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "AnimationEvent.error_message"`)}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "AnimationEvent.code"`)}
	}
	return nil
}

func (_c *AnimationEventCreate) sqlSave(ctx context.Context) (*AnimationEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnimationEventCreate) createSpec() (*AnimationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnimationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(animationevent.Table, sqlgraph.NewFieldSpec(animationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(animationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(animationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(animationevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(animationevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(animationevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.SceneName(); ok {
		_spec.SetField(animationevent.FieldSceneName, field.TypeString, value)
		_node.SceneName = value
	}
	if value, ok := _c.mutation.OutputPath(); ok {
		_spec.SetField(animationevent.FieldOutputPath, field.TypeString, value)
		_node.OutputPath = value
	}
	if value, ok := _c.mutation.GenerationAttempts(); ok {
		_spec.SetField(animationevent.FieldGenerationAttempts, field.TypeInt, value)
		_node.GenerationAttempts = value
	}
	if value, ok := _c.mutation.RenderAttempts(); ok {
		_spec.SetField(animationevent.FieldRenderAttempts, field.TypeInt, value)
		_node.RenderAttempts = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(animationevent.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.RenderSeconds(); ok {
		_spec.SetField(animationevent.FieldRenderSeconds, field.TypeFloat64, value)
		_node.RenderSeconds = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(animationevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(animationevent.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	return _node, _spec
}

// AnimationEventCreateBulk is the builder for creating many AnimationEvent entities in bulk.
type AnimationEventCreateBulk struct {
	config
	err      error
	builders []*AnimationEventCreate
}

// Save creates the AnimationEvent entities in the database.
func (_c *AnimationEventCreateBulk) Save(ctx context.Context) ([]*AnimationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnimationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnimationEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnimationEventCreateBulk) SaveX(ctx context.Context) []*AnimationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnimationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnimationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
