// Code generated by ent, DO NOT EDIT.

package animationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the animationevent type in the database.
	Label = "animation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldSceneName holds the string denoting the scene_name field in the database.
	FieldSceneName = "scene_name"
	// FieldOutputPath holds the string denoting the output_path field in the database.
	FieldOutputPath = "output_path"
	// FieldGenerationAttempts holds the string denoting the generation_attempts field in the database.
	FieldGenerationAttempts = "generation_attempts"
	// FieldRenderAttempts holds the string denoting the render_attempts field in the database.
	FieldRenderAttempts = "render_attempts"
	// FieldTotalAttempts holds the string denoting the total_attempts field in the database.
	FieldTotalAttempts = "total_attempts"
	// FieldRenderSeconds holds the string denoting the render_seconds field in the database.
	FieldRenderSeconds = "render_seconds"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// Table holds the table name of the animationevent in the database.
	Table = "animation_events"
)

// Columns holds all SQL columns for animationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldTopic,
	FieldKind,
	FieldSuccess,
	FieldSceneName,
	FieldOutputPath,
	FieldGenerationAttempts,
	FieldRenderAttempts,
	FieldTotalAttempts,
	FieldRenderSeconds,
	FieldErrorMessage,
	FieldCode,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultSceneName holds the default value on creation for the "scene_name" field.
	DefaultSceneName string
	// DefaultOutputPath holds the default value on creation for the "output_path" field.
	DefaultOutputPath string
	// DefaultGenerationAttempts holds the default value on creation for the "generation_attempts" field.
	DefaultGenerationAttempts int
	// DefaultRenderAttempts holds the default value on creation for the "render_attempts" field.
	DefaultRenderAttempts int
	// DefaultTotalAttempts holds the default value on creation for the "total_attempts" field.
	DefaultTotalAttempts int
	// DefaultRenderSeconds holds the default value on creation for the "render_seconds" field.
	DefaultRenderSeconds float64
	// DefaultErrorMessage holds the default value on creation for the "error_message" field.
	DefaultErrorMessage string
	// DefaultCode holds the default value on creation for the "code" field.
	DefaultCode string
)

// OrderOption defines the ordering options for the AnimationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// BySceneName orders the results by the scene_name field.
func BySceneName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSceneName, opts...).ToFunc()
}

// ByOutputPath orders the results by the output_path field.
func ByOutputPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputPath, opts...).ToFunc()
}

// ByGenerationAttempts orders the results by the generation_attempts field.
func ByGenerationAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerationAttempts, opts...).ToFunc()
}

// ByRenderAttempts orders the results by the render_attempts field.
func ByRenderAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRenderAttempts, opts...).ToFunc()
}

// ByTotalAttempts orders the results by the total_attempts field.
func ByTotalAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAttempts, opts...).ToFunc()
}

// ByRenderSeconds orders the results by the render_seconds field.
func ByRenderSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRenderSeconds, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}
