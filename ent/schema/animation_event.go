package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnimationEvent records one animation pipeline run, successful or not.
// Failed runs keep the final code so they can be inspected later.
type AnimationEvent struct {
	ent.Schema
}

func (AnimationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnimationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			Comment("Topic or question the run answered"),
		field.String("kind").
			Comment("Pipeline that produced the animation: llm, template"),
		field.Bool("success"),
		field.String("scene_name").
			Default("").
			Comment("Entry-point scene class name"),
		field.String("output_path").
			Default("").
			Comment("Final artifact location, empty on failure"),
		field.Int("generation_attempts").
			Default(0),
		field.Int("render_attempts").
			Default(0),
		field.Int("total_attempts").
			Default(0),
		field.Float("render_seconds").
			Default(0),
		field.String("error_message").
			Default(""),
		field.Text("code").
			Default("").
			Comment("Final scene source of the run"),
	}
}

func (AnimationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("success"),
	}
}
