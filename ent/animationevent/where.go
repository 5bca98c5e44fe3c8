// Code generated by ent, DO NOT EDIT.

package animationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nkurella/manimate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldTopic, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldKind, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldSuccess, v))
}

// SceneName applies equality check predicate on the "scene_name" field. It's identical to SceneNameEQ.
func SceneName(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldSceneName, v))
}

// OutputPath applies equality check predicate on the "output_path" field. It's identical to OutputPathEQ.
func OutputPath(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldOutputPath, v))
}

// GenerationAttempts applies equality check predicate on the "generation_attempts" field. It's identical to GenerationAttemptsEQ.
func GenerationAttempts(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldGenerationAttempts, v))
}

// RenderAttempts applies equality check predicate on the "render_attempts" field. It's identical to RenderAttemptsEQ.
func RenderAttempts(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldRenderAttempts, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldTotalAttempts, v))
}

// RenderSeconds applies equality check predicate on the "render_seconds" field. It's identical to RenderSecondsEQ.
func RenderSeconds(v float64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldRenderSeconds, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldCode, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldContainsFold(FieldTopic, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldContainsFold(FieldKind, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNEQ(FieldSuccess, v))
}

// SceneNameEQ applies the EQ predicate on the "scene_name" field.
func SceneNameEQ(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldSceneName, v))
}

// SceneNameNEQ applies the NEQ predicate on the "scene_name" field.
func SceneNameNEQ(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNEQ(FieldSceneName, v))
}

// SceneNameIn applies the In predicate on the "scene_name" field.
func SceneNameIn(vs ...string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldIn(FieldSceneName, vs...))
}

// SceneNameNotIn applies the NotIn predicate on the "scene_name" field.
func SceneNameNotIn(vs ...string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNotIn(FieldSceneName, vs...))
}

// SceneNameGT applies the GT predicate on the "scene_name" field.
func SceneNameGT(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGT(FieldSceneName, v))
}

// SceneNameGTE applies the GTE predicate on the "scene_name" field.
func SceneNameGTE(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGTE(FieldSceneName, v))
}

// SceneNameLT applies the LT predicate on the "scene_name" field.
func SceneNameLT(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLT(FieldSceneName, v))
}

// SceneNameLTE applies the LTE predicate on the "scene_name" field.
func SceneNameLTE(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLTE(FieldSceneName, v))
}

// SceneNameContains applies the Contains predicate on the "scene_name" field.
func SceneNameContains(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldContains(FieldSceneName, v))
}

// SceneNameHasPrefix applies the HasPrefix predicate on the "scene_name" field.
func SceneNameHasPrefix(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldHasPrefix(FieldSceneName, v))
}

// SceneNameHasSuffix applies the HasSuffix predicate on the "scene_name" field.
func SceneNameHasSuffix(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldHasSuffix(FieldSceneName, v))
}

// SceneNameEqualFold applies the EqualFold predicate on the "scene_name" field.
func SceneNameEqualFold(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEqualFold(FieldSceneName, v))
}

// SceneNameContainsFold applies the ContainsFold predicate on the "scene_name" field.
func SceneNameContainsFold(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldContainsFold(FieldSceneName, v))
}

// OutputPathEQ applies the EQ predicate on the "output_path" field.
func OutputPathEQ(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldOutputPath, v))
}

// OutputPathNEQ applies the NEQ predicate on the "output_path" field.
func OutputPathNEQ(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNEQ(FieldOutputPath, v))
}

// OutputPathIn applies the In predicate on the "output_path" field.
func OutputPathIn(vs ...string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldIn(FieldOutputPath, vs...))
}

// OutputPathNotIn applies the NotIn predicate on the "output_path" field.
func OutputPathNotIn(vs ...string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNotIn(FieldOutputPath, vs...))
}

// OutputPathGT applies the GT predicate on the "output_path" field.
func OutputPathGT(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGT(FieldOutputPath, v))
}

// OutputPathGTE applies the GTE predicate on the "output_path" field.
func OutputPathGTE(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGTE(FieldOutputPath, v))
}

// OutputPathLT applies the LT predicate on the "output_path" field.
func OutputPathLT(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLT(FieldOutputPath, v))
}

// OutputPathLTE applies the LTE predicate on the "output_path" field.
func OutputPathLTE(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLTE(FieldOutputPath, v))
}

// OutputPathContains applies the Contains predicate on the "output_path" field.
func OutputPathContains(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldContains(FieldOutputPath, v))
}

// OutputPathHasPrefix applies the HasPrefix predicate on the "output_path" field.
func OutputPathHasPrefix(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldHasPrefix(FieldOutputPath, v))
}

// OutputPathHasSuffix applies the HasSuffix predicate on the "output_path" field.
func OutputPathHasSuffix(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldHasSuffix(FieldOutputPath, v))
}

// OutputPathEqualFold applies the EqualFold predicate on the "output_path" field.
func OutputPathEqualFold(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEqualFold(FieldOutputPath, v))
}

// OutputPathContainsFold applies the ContainsFold predicate on the "output_path" field.
func OutputPathContainsFold(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldContainsFold(FieldOutputPath, v))
}

// GenerationAttemptsEQ applies the EQ predicate on the "generation_attempts" field.
func GenerationAttemptsEQ(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldGenerationAttempts, v))
}

// GenerationAttemptsNEQ applies the NEQ predicate on the "generation_attempts" field.
func GenerationAttemptsNEQ(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNEQ(FieldGenerationAttempts, v))
}

// GenerationAttemptsIn applies the In predicate on the "generation_attempts" field.
func GenerationAttemptsIn(vs ...int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldIn(FieldGenerationAttempts, vs...))
}

// GenerationAttemptsNotIn applies the NotIn predicate on the "generation_attempts" field.
func GenerationAttemptsNotIn(vs ...int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNotIn(FieldGenerationAttempts, vs...))
}

// GenerationAttemptsGT applies the GT predicate on the "generation_attempts" field.
func GenerationAttemptsGT(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGT(FieldGenerationAttempts, v))
}

// GenerationAttemptsGTE applies the GTE predicate on the "generation_attempts" field.
func GenerationAttemptsGTE(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGTE(FieldGenerationAttempts, v))
}

// GenerationAttemptsLT applies the LT predicate on the "generation_attempts" field.
func GenerationAttemptsLT(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLT(FieldGenerationAttempts, v))
}

// GenerationAttemptsLTE applies the LTE predicate on the "generation_attempts" field.
func GenerationAttemptsLTE(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLTE(FieldGenerationAttempts, v))
}

// RenderAttemptsEQ applies the EQ predicate on the "render_attempts" field.
func RenderAttemptsEQ(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldRenderAttempts, v))
}

// RenderAttemptsNEQ applies the NEQ predicate on the "render_attempts" field.
func RenderAttemptsNEQ(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNEQ(FieldRenderAttempts, v))
}

// RenderAttemptsIn applies the In predicate on the "render_attempts" field.
func RenderAttemptsIn(vs ...int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldIn(FieldRenderAttempts, vs...))
}

// RenderAttemptsNotIn applies the NotIn predicate on the "render_attempts" field.
func RenderAttemptsNotIn(vs ...int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNotIn(FieldRenderAttempts, vs...))
}

// RenderAttemptsGT applies the GT predicate on the "render_attempts" field.
func RenderAttemptsGT(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGT(FieldRenderAttempts, v))
}

// RenderAttemptsGTE applies the GTE predicate on the "render_attempts" field.
func RenderAttemptsGTE(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGTE(FieldRenderAttempts, v))
}

// RenderAttemptsLT applies the LT predicate on the "render_attempts" field.
func RenderAttemptsLT(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLT(FieldRenderAttempts, v))
}

// RenderAttemptsLTE applies the LTE predicate on the "render_attempts" field.
func RenderAttemptsLTE(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLTE(FieldRenderAttempts, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLTE(FieldTotalAttempts, v))
}

// RenderSecondsEQ applies the EQ predicate on the "render_seconds" field.
func RenderSecondsEQ(v float64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldRenderSeconds, v))
}

// RenderSecondsNEQ applies the NEQ predicate on the "render_seconds" field.
func RenderSecondsNEQ(v float64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNEQ(FieldRenderSeconds, v))
}

// RenderSecondsIn applies the In predicate on the "render_seconds" field.
func RenderSecondsIn(vs ...float64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldIn(FieldRenderSeconds, vs...))
}

// RenderSecondsNotIn applies the NotIn predicate on the "render_seconds" field.
func RenderSecondsNotIn(vs ...float64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNotIn(FieldRenderSeconds, vs...))
}

// RenderSecondsGT applies the GT predicate on the "render_seconds" field.
func RenderSecondsGT(v float64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGT(FieldRenderSeconds, v))
}

// RenderSecondsGTE applies the GTE predicate on the "render_seconds" field.
func RenderSecondsGTE(v float64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGTE(FieldRenderSeconds, v))
}

// RenderSecondsLT applies the LT predicate on the "render_seconds" field.
func RenderSecondsLT(v float64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLT(FieldRenderSeconds, v))
}

// RenderSecondsLTE applies the LTE predicate on the "render_seconds" field.
func RenderSecondsLTE(v float64) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLTE(FieldRenderSeconds, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.FieldContainsFold(FieldCode, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnimationEvent) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnimationEvent) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnimationEvent) predicate.AnimationEvent {
	return predicate.AnimationEvent(sql.NotPredicates(p))
}
