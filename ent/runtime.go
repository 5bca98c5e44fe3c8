// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nkurella/manimate/ent/animationevent"
	"github.com/nkurella/manimate/ent/llmrequestevent"
	"github.com/nkurella/manimate/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	animationeventMixin := schema.AnimationEvent{}.Mixin()
	animationeventMixinFields0 := animationeventMixin[0].Fields()
	_ = animationeventMixinFields0
	animationeventFields := schema.AnimationEvent{}.Fields()
	_ = animationeventFields
	// animationeventDescTimestamp is the schema descriptor for timestamp field.
	animationeventDescTimestamp := animationeventMixinFields0[1].Descriptor()
	// animationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	animationevent.DefaultTimestamp = animationeventDescTimestamp.Default.(func() time.Time)
	// animationeventDescSceneName is the schema descriptor for scene_name field.
	animationeventDescSceneName := animationeventFields[3].Descriptor()
	// animationevent.DefaultSceneName holds the default value on creation for the scene_name field.
	animationevent.DefaultSceneName = animationeventDescSceneName.Default.(string)
	// animationeventDescOutputPath is the schema descriptor for output_path field.
	animationeventDescOutputPath := animationeventFields[4].Descriptor()
	// animationevent.DefaultOutputPath holds the default value on creation for the output_path field.
	animationevent.DefaultOutputPath = animationeventDescOutputPath.Default.(string)
	// animationeventDescGenerationAttempts is the schema descriptor for generation_attempts field.
	animationeventDescGenerationAttempts := animationeventFields[5].Descriptor()
	// animationevent.DefaultGenerationAttempts holds the default value on creation for the generation_attempts field.
	animationevent.DefaultGenerationAttempts = animationeventDescGenerationAttempts.Default.(int)
	// animationeventDescRenderAttempts is the schema descriptor for render_attempts field.
	animationeventDescRenderAttempts := animationeventFields[6].Descriptor()
	// animationevent.DefaultRenderAttempts holds the default value on creation for the render_attempts field.
	animationevent.DefaultRenderAttempts = animationeventDescRenderAttempts.Default.(int)
	// animationeventDescTotalAttempts is the schema descriptor for total_attempts field.
	animationeventDescTotalAttempts := animationeventFields[7].Descriptor()
	// animationevent.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	animationevent.DefaultTotalAttempts = animationeventDescTotalAttempts.Default.(int)
	// animationeventDescRenderSeconds is the schema descriptor for render_seconds field.
	animationeventDescRenderSeconds := animationeventFields[8].Descriptor()
	// animationevent.DefaultRenderSeconds holds the default value on creation for the render_seconds field.
	animationevent.DefaultRenderSeconds = animationeventDescRenderSeconds.Default.(float64)
	// animationeventDescErrorMessage is the schema descriptor for error_message field.
	animationeventDescErrorMessage := animationeventFields[9].Descriptor()
	// animationevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	animationevent.DefaultErrorMessage = animationeventDescErrorMessage.Default.(string)
	// animationeventDescCode is the schema descriptor for code field.
	animationeventDescCode := animationeventFields[10].Descriptor()
	// animationevent.DefaultCode holds the default value on creation for the code field.
	animationevent.DefaultCode = animationeventDescCode.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
