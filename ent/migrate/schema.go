// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnimationEventsColumns holds the columns for the "animation_events" table.
	AnimationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "topic", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "scene_name", Type: field.TypeString, Default: ""},
		{Name: "output_path", Type: field.TypeString, Default: ""},
		{Name: "generation_attempts", Type: field.TypeInt, Default: 0},
		{Name: "render_attempts", Type: field.TypeInt, Default: 0},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "render_seconds", Type: field.TypeFloat64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "code", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// AnimationEventsTable holds the schema information for the "animation_events" table.
	AnimationEventsTable = &schema.Table{
		Name:       "animation_events",
		Columns:    AnimationEventsColumns,
		PrimaryKey: []*schema.Column{AnimationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "animationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnimationEventsColumns[1]},
			},
			{
				Name:    "animationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnimationEventsColumns[2]},
			},
			{
				Name:    "animationevent_kind",
				Unique:  false,
				Columns: []*schema.Column{AnimationEventsColumns[4]},
			},
			{
				Name:    "animationevent_success",
				Unique:  false,
				Columns: []*schema.Column{AnimationEventsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnimationEventsTable,
		LlmRequestEventsTable,
	}
)

func init() {
}
