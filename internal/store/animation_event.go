package store

import (
	"context"
	"fmt"

	"github.com/nkurella/manimate/ent"
	"github.com/nkurella/manimate/ent/animationevent"
)

// animationRepo implements AnimationRepo backed by ent.
type animationRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *animationRepo) AppendAnimation(ctx context.Context, data AnimationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnimationEvent.Create().
		SetSequence(seqNum).
		SetTopic(data.Topic).
		SetKind(data.Kind).
		SetSuccess(data.Success).
		SetSceneName(data.SceneName).
		SetOutputPath(data.OutputPath).
		SetGenerationAttempts(data.GenerationAttempts).
		SetRenderAttempts(data.RenderAttempts).
		SetTotalAttempts(data.TotalAttempts).
		SetRenderSeconds(data.RenderSeconds).
		SetErrorMessage(data.ErrorMessage).
		SetCode(data.Code).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save animation event: %w", err)
	}

	return nil
}

func (r *animationRepo) QueryAnimations(ctx context.Context, opts QueryOpts) ([]AnimationRecord, error) {
	q := r.client.AnimationEvent.Query().
		Order(ent.Desc(animationevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(animationevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(animationevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(animationevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(animationevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query animations: %w", err)
	}

	out := make([]AnimationRecord, len(rows))
	for i, e := range rows {
		out[i] = animationRecordFromEnt(e)
	}
	return out, nil
}

func (r *animationRepo) GetAnimation(ctx context.Context, id int) (*AnimationRecord, error) {
	e, err := r.client.AnimationEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get animation %d: %w", id, err)
	}
	rec := animationRecordFromEnt(e)
	return &rec, nil
}

func animationRecordFromEnt(e *ent.AnimationEvent) AnimationRecord {
	return AnimationRecord{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		AnimationEventData: AnimationEventData{
			Topic:              e.Topic,
			Kind:               e.Kind,
			Success:            e.Success,
			SceneName:          e.SceneName,
			OutputPath:         e.OutputPath,
			GenerationAttempts: e.GenerationAttempts,
			RenderAttempts:     e.RenderAttempts,
			TotalAttempts:      e.TotalAttempts,
			RenderSeconds:      e.RenderSeconds,
			ErrorMessage:       e.ErrorMessage,
			Code:               e.Code,
		},
	}
}
