// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nkurella/manimate/ent/animationevent"
)

// AnimationEvent is the model entity for the AnimationEvent schema.
type AnimationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Topic or question the run answered
	Topic string `json:"topic,omitempty"`
	// Pipeline that produced the animation: llm, template
	Kind string `json:"kind,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// Entry-point scene class name
	SceneName string `json:"scene_name,omitempty"`
	// Final artifact location, empty on failure
	OutputPath string `json:"output_path,omitempty"`
	// GenerationAttempts holds the value of the "generation_attempts" field.
	GenerationAttempts int `json:"generation_attempts,omitempty"`
	// RenderAttempts holds the value of the "render_attempts" field.
	RenderAttempts int `json:"render_attempts,omitempty"`
	// TotalAttempts holds the value of the "total_attempts" field.
	TotalAttempts int `json:"total_attempts,omitempty"`
	// RenderSeconds holds the value of the "render_seconds" field.
	RenderSeconds float64 `json:"render_seconds,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// Final scene source of the run
	Code         string `json:"code,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnimationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case animationevent.FieldSuccess:
			values[i] = new(sql.NullBool)
		case animationevent.FieldRenderSeconds:
			values[i] = new(sql.NullFloat64)
		case animationevent.FieldID, animationevent.FieldSequence, animationevent.FieldGenerationAttempts, animationevent.FieldRenderAttempts, animationevent.FieldTotalAttempts:
			values[i] = new(sql.NullInt64)
		case animationevent.FieldTopic, animationevent.FieldKind, animationevent.FieldSceneName, animationevent.FieldOutputPath, animationevent.FieldErrorMessage, animationevent.FieldCode:
			values[i] = new(sql.NullString)
		case animationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnimationEvent fields.
func (_m *AnimationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case animationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case animationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case animationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case animationevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case animationevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case animationevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case animationevent.FieldSceneName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scene_name", values[i])
			} else if value.Valid {
				_m.SceneName = value.String
			}
		case animationevent.FieldOutputPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_path", values[i])
			} else if value.Valid {
				_m.OutputPath = value.String
			}
		case animationevent.FieldGenerationAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field generation_attempts", values[i])
			} else if value.Valid {
				_m.GenerationAttempts = int(value.Int64)
			}
		case animationevent.FieldRenderAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field render_attempts", values[i])
			} else if value.Valid {
				_m.RenderAttempts = int(value.Int64)
			}
		case animationevent.FieldTotalAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempts", values[i])
			} else if value.Valid {
				_m.TotalAttempts = int(value.Int64)
			}
		case animationevent.FieldRenderSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field render_seconds", values[i])
			} else if value.Valid {
				_m.RenderSeconds = value.Float64
			}
		case animationevent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case animationevent.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnimationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AnimationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnimationEvent.
// Note that you need to call AnimationEvent.Unwrap() before calling this method if this AnimationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnimationEvent) Update() *AnimationEventUpdateOne {
	return NewAnimationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnimationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnimationEvent) Unwrap() *AnimationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnimationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnimationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AnimationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("scene_name=")
	builder.WriteString(_m.SceneName)
	builder.WriteString(", ")
	builder.WriteString("output_path=")
	builder.WriteString(_m.OutputPath)
	builder.WriteString(", ")
	builder.WriteString("generation_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.GenerationAttempts))
	builder.WriteString(", ")
	builder.WriteString("render_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.RenderAttempts))
	builder.WriteString(", ")
	builder.WriteString("total_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAttempts))
	builder.WriteString(", ")
	builder.WriteString("render_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.RenderSeconds))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteByte(')')
	return builder.String()
}

// AnimationEvents is a parsable slice of AnimationEvent.
type AnimationEvents []*AnimationEvent
