package services

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"vahanbazar/internal/models"
	"vahanbazar/internal/repositories/interfaces"
	"vahanbazar/pkg/logger"
)

type BrandService struct {
	brands interfaces.BrandRepository
	logger *logger.Logger
}

func NewBrandService(brands interfaces.BrandRepository, log *logger.Logger) *BrandService {
	return &BrandService{
		brands: brands,
		logger: log,
	}
}

// Resolve turns a brand reference into a stored brand. An id reference must
// exist; an inline reference creates the brand and rejects duplicate names.
func (s *BrandService) Resolve(ctx context.Context, ref models.BrandRef) (*models.Brand, error) {
	if ref.ID != nil {
		brand, err := s.brands.GetByID(ctx, *ref.ID)
		if err != nil {
			if errors.Is(err, interfaces.ErrNotFound) {
				return nil, NewNotFoundError(CodeBrandNotFound, "brand does not exist")
			}
			return nil, err
		}
		return brand, nil
	}

	return s.Create(ctx, ref.Inline)
}

func (s *BrandService) Create(ctx context.Context, input *models.BrandInput) (*models.Brand, error) {
	name := titleCase(strings.TrimSpace(input.Name))

	if _, err := s.brands.GetByName(ctx, name); err == nil {
		return nil, NewConflictError(CodeDuplicateBrand, "brand with this name already exists")
	} else if !errors.Is(err, interfaces.ErrNotFound) {
		return nil, err
	}

	brand := &models.Brand{
		Name: name,
		Logo: input.Logo,
	}
	if err := s.brands.Create(ctx, brand); err != nil {
		// A concurrent create can slip past the pre-check; the unique index
		// settles it.
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return nil, NewConflictError(CodeDuplicateBrand, "brand with this name already exists")
		}
		return nil, err
	}

	s.logger.WithField("brand_id", brand.ID.Hex()).Info("brand created")
	return brand, nil
}

func (s *BrandService) Get(ctx context.Context, id string) (*models.Brand, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, NewNotFoundError(CodeBrandNotFound, "brand does not exist")
	}

	brand, err := s.brands.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, NewNotFoundError(CodeBrandNotFound, "brand does not exist")
		}
		return nil, err
	}

	return brand, nil
}

func (s *BrandService) List(ctx context.Context, page interfaces.Page) ([]*models.Brand, int64, error) {
	if page.SortField == "" {
		page.SortField = "name"
		page.SortAsc = true
	}
	return s.brands.List(ctx, page)
}

func (s *BrandService) Update(ctx context.Context, id string, input *models.BrandInput) (*models.Brand, error) {
	brand, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	brand.Name = titleCase(strings.TrimSpace(input.Name))
	brand.Logo = input.Logo

	if err := s.brands.Update(ctx, brand); err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return nil, NewConflictError(CodeDuplicateBrand, "brand with this name already exists")
		}
		return nil, err
	}

	return brand, nil
}

func (s *BrandService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return NewNotFoundError(CodeBrandNotFound, "brand does not exist")
	}

	if err := s.brands.Delete(ctx, oid); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return NewNotFoundError(CodeBrandNotFound, "brand does not exist")
		}
		return err
	}

	return nil
}

// titleCase uppercases the first letter of every word and lowercases the
// rest. Any non-letter rune starts a new word, so "royal enfield" becomes
// "Royal Enfield" and "bmw-motorrad" becomes "Bmw-Motorrad".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inWord := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if inWord {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			inWord = true
		} else {
			b.WriteRune(r)
			inWord = false
		}
	}

	return b.String()
}
