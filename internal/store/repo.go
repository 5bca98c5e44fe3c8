package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage per purpose label.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events matching opts, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one event by id, or nil when it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// AnimationEventData captures the outcome of one animation run.
type AnimationEventData struct {
	// Topic is the topic or question the run answered.
	Topic string

	// Kind is the pipeline that produced the animation: "llm" or "template".
	Kind string

	Success    bool
	SceneName  string
	OutputPath string

	GenerationAttempts int
	RenderAttempts     int
	TotalAttempts      int

	RenderSeconds float64
	ErrorMessage  string

	// Code is the final scene source, kept so failed runs can be
	// inspected and hand-fixed later.
	Code string
}

// AnimationRecord is a stored animation run.
type AnimationRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AnimationEventData
}

// AnimationRepo provides append and query access to animation runs.
type AnimationRepo interface {
	// AppendAnimation records one pipeline run, success or failure.
	AppendAnimation(ctx context.Context, data AnimationEventData) error

	// QueryAnimations returns runs matching opts, newest first.
	QueryAnimations(ctx context.Context, opts QueryOpts) ([]AnimationRecord, error)

	// GetAnimation returns one run by id, or nil when it does not exist.
	GetAnimation(ctx context.Context, id int) (*AnimationRecord, error)
}
