package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
	"vahanbazar/internal/repositories/interfaces"
	"vahanbazar/pkg/logger"
)

type VariantService struct {
	variants interfaces.VariantRepository
	logger   *logger.Logger
}

func NewVariantService(variants interfaces.VariantRepository, log *logger.Logger) *VariantService {
	return &VariantService{
		variants: variants,
		logger:   log,
	}
}

// Resolve turns a variant reference into a stored variant scoped to modelID.
// An id reference must exist. An inline reference reuses the variant with the
// same name under the model if present, and creates it otherwise. The explicit
// Create path rejects duplicates instead; the reuse behavior here belongs to
// listing composition only.
func (s *VariantService) Resolve(ctx context.Context, modelID primitive.ObjectID, ref models.VariantRef) (*models.VehicleModelVariant, error) {
	if ref.ID != nil {
		variant, err := s.variants.GetByID(ctx, *ref.ID)
		if err != nil {
			if errors.Is(err, interfaces.ErrNotFound) {
				return nil, NewNotFoundError(CodeVariantNotFound, "variant does not exist")
			}
			return nil, err
		}
		return variant, nil
	}

	name := strings.TrimSpace(ref.Inline.Name)
	if existing, err := s.variants.GetByModelAndName(ctx, modelID, name); err == nil {
		return existing, nil
	} else if !errors.Is(err, interfaces.ErrNotFound) {
		return nil, err
	}

	variant := &models.VehicleModelVariant{
		VehicleModelID: modelID,
		Name:           name,
		Specs:          ref.Inline.Specs,
	}
	if err := s.variants.Create(ctx, variant); err != nil {
		// Lost a creation race; the other writer's row is the one to reuse.
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return s.variants.GetByModelAndName(ctx, modelID, name)
		}
		return nil, err
	}

	return variant, nil
}

func (s *VariantService) Create(ctx context.Context, modelID primitive.ObjectID, input *models.VariantInput) (*models.VehicleModelVariant, error) {
	name := strings.TrimSpace(input.Name)

	variant := &models.VehicleModelVariant{
		VehicleModelID: modelID,
		Name:           name,
		Specs:          input.Specs,
	}
	if err := s.variants.Create(ctx, variant); err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return nil, NewConflictError(CodeDuplicateVariant, "variant with this name already exists for the model")
		}
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"variant_id": variant.ID.Hex(),
		"model_id":   modelID.Hex(),
	}).Info("variant created")

	return variant, nil
}

func (s *VariantService) Get(ctx context.Context, id string) (*models.VehicleModelVariant, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, NewNotFoundError(CodeVariantNotFound, "variant does not exist")
	}

	variant, err := s.variants.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, NewNotFoundError(CodeVariantNotFound, "variant does not exist")
		}
		return nil, err
	}

	return variant, nil
}

func (s *VariantService) ListByModel(ctx context.Context, modelID primitive.ObjectID) ([]*models.VehicleModelVariant, error) {
	return s.variants.ListByModel(ctx, modelID)
}

func (s *VariantService) Update(ctx context.Context, id string, input *models.VariantInput) (*models.VehicleModelVariant, error) {
	variant, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	variant.Name = strings.TrimSpace(input.Name)
	variant.Specs = input.Specs

	if err := s.variants.Update(ctx, variant); err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return nil, NewConflictError(CodeDuplicateVariant, "variant with this name already exists for the model")
		}
		return nil, err
	}

	return variant, nil
}

func (s *VariantService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return NewNotFoundError(CodeVariantNotFound, "variant does not exist")
	}

	if err := s.variants.Delete(ctx, oid); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return NewNotFoundError(CodeVariantNotFound, "variant does not exist")
		}
		return err
	}

	return nil
}
