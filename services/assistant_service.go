package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"aromi-agent-backend/knowledge"
	"aromi-agent-backend/models"

	"github.com/gin-gonic/gin/binding"
)

// AssistantService routes typed request envelopes to the content, fitness
// and diet services. It backs transports that multiplex several operations
// over one connection.
type AssistantService struct {
	Content *ContentService
	Fitness *FitnessService
	Diet    *DietService
}

func NewAssistantService(tables *knowledge.Tables, contentCacheSize int) (*AssistantService, error) {
	content, err := NewContentService(tables, contentCacheSize)
	if err != nil {
		return nil, err
	}

	return &AssistantService{
		Content: content,
		Fitness: NewFitnessService(tables),
		Diet:    NewDietService(tables),
	}, nil
}

func (s *AssistantService) Dispatch(ctx context.Context, env models.Envelope) (*models.EnvelopeReply, error) {
	var (
		data interface{}
		err  error
	)

	switch env.Type {
	case models.EnvelopeGenerate:
		var body models.ContentBody
		if err := decodePayload(env.Payload, &body); err != nil {
			return nil, err
		}
		data, err = s.Content.Generate(ctx, body.Request())
	case models.EnvelopeFitnessPlan:
		var body models.FitnessBody
		if err := decodePayload(env.Payload, &body); err != nil {
			return nil, err
		}
		data, err = s.Fitness.BuildPlan(ctx, body.Request())
	case models.EnvelopeDiseaseDiet:
		var body models.DiseaseBody
		if err := decodePayload(env.Payload, &body); err != nil {
			return nil, err
		}
		data, err = s.Diet.BuildPlan(ctx, body.Request())
	default:
		return nil, models.NewValidationErrorf("unknown request type %q", env.Type)
	}

	if err != nil {
		return nil, err
	}

	return &models.EnvelopeReply{
		Type: env.Type,
		ID:   env.ID,
		Data: data,
	}, nil
}

// decodePayload applies the same binding rules as the HTTP handlers. A
// missing payload is treated as an empty object.
func decodePayload(payload json.RawMessage, dst interface{}) error {
	if len(bytes.TrimSpace(payload)) > 0 {
		if err := json.Unmarshal(payload, dst); err != nil {
			return models.NewValidationError(fmt.Errorf("invalid payload: %w", err))
		}
	}
	if err := binding.Validator.ValidateStruct(dst); err != nil {
		return models.NewValidationError(fmt.Errorf("invalid payload: %w", err))
	}
	return nil
}
