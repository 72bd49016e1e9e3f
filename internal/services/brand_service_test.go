package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
)

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, code, de.Code)
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"royal enfield": "Royal Enfield",
		"HONDA":         "Honda",
		"tVs":           "Tvs",
		"bmw-motorrad":  "Bmw-Motorrad",
		"ktm 390":       "Ktm 390",
		"":              "",
	}
	for in, want := range cases {
		assert.Equal(t, want, titleCase(in), "titleCase(%q)", in)
	}
}

func TestBrandResolveByID(t *testing.T) {
	repo := newFakeBrandRepo()
	svc := NewBrandService(repo, testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.BrandInput{Name: "hero"})
	require.NoError(t, err)
	assert.Equal(t, "Hero", created.Name)

	resolved, err := svc.Resolve(ctx, models.BrandRef{ID: &created.ID})
	require.NoError(t, err)
	assert.Equal(t, created.ID, resolved.ID)
}

func TestBrandResolveUnknownID(t *testing.T) {
	svc := NewBrandService(newFakeBrandRepo(), testLogger())

	missing := primitive.NewObjectID()
	_, err := svc.Resolve(context.Background(), models.BrandRef{ID: &missing})
	requireDomainCode(t, err, CodeBrandNotFound)
}

func TestBrandResolveInlineCreates(t *testing.T) {
	repo := newFakeBrandRepo()
	svc := NewBrandService(repo, testLogger())

	brand, err := svc.Resolve(context.Background(), models.BrandRef{
		Inline: &models.BrandInput{Name: "bajaj auto", Logo: "https://cdn.test/bajaj.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bajaj Auto", brand.Name)
	assert.False(t, brand.ID.IsZero())

	stored, err := repo.GetByID(context.Background(), brand.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/bajaj.png", stored.Logo)
}

func TestBrandResolveInlineDuplicateName(t *testing.T) {
	svc := NewBrandService(newFakeBrandRepo(), testLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.BrandInput{Name: "Suzuki"})
	require.NoError(t, err)

	// Same name after title casing counts as a duplicate.
	_, err = svc.Resolve(ctx, models.BrandRef{Inline: &models.BrandInput{Name: "suzuki"}})
	requireDomainCode(t, err, CodeDuplicateBrand)

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindConflict, de.Kind)
}

func TestBrandUpdateToExistingName(t *testing.T) {
	svc := NewBrandService(newFakeBrandRepo(), testLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.BrandInput{Name: "Honda"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &models.BrandInput{Name: "Hero"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, second.ID.Hex(), &models.BrandInput{Name: "honda"})
	requireDomainCode(t, err, CodeDuplicateBrand)
}

func TestBrandGetInvalidID(t *testing.T) {
	svc := NewBrandService(newFakeBrandRepo(), testLogger())

	_, err := svc.Get(context.Background(), "definitely-not-an-id")
	requireDomainCode(t, err, CodeBrandNotFound)
}

func TestBrandDelete(t *testing.T) {
	svc := NewBrandService(newFakeBrandRepo(), testLogger())
	ctx := context.Background()

	brand, err := svc.Create(ctx, &models.BrandInput{Name: "Yamaha"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, brand.ID.Hex()))

	_, err = svc.Get(ctx, brand.ID.Hex())
	requireDomainCode(t, err, CodeBrandNotFound)
}
