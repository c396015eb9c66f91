package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vengerka/cakemaster-api/app/helpers"
	"github.com/vengerka/cakemaster-api/app/models"
	"github.com/vengerka/cakemaster-api/app/repositories"
)

func newCatalogService(t *testing.T) *CatalogService {
	t.Helper()
	repo := repositories.NewCategoryRepository(getTestDB(t))
	return NewCatalogService(repo, &nopUploader{})
}

func categoryInput(en, cs string) CategoryInput {
	return CategoryInput{
		Name: models.Localized{EN: en, CS: cs},
	}
}

func TestCreateCategoryAppendsAtEnd(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, categoryInput("Birthday", "Narozeninové"))
	assert.NoError(t, err)
	b, err := svc.Create(ctx, categoryInput("Wedding", "Svatební"))
	assert.NoError(t, err)

	assert.Equal(t, 0, a.Position)
	assert.Equal(t, 1, b.Position)

	categories, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{a.ID, b.ID}, []string{categories[0].ID, categories[1].ID})
}

func TestCreateCategoryValidation(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.Create(context.Background(), categoryInput("Birthday", ""))
	var vErr *helpers.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "name.cs")
}

func TestReorderCategories(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	a, _ := svc.Create(ctx, categoryInput("A", "A"))
	b, _ := svc.Create(ctx, categoryInput("B", "B"))
	c, _ := svc.Create(ctx, categoryInput("C", "C"))

	assert.NoError(t, svc.Reorder(ctx, []string{c.ID, a.ID, b.ID}))

	categories, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{c.ID, a.ID, b.ID}, []string{categories[0].ID, categories[1].ID, categories[2].ID})
	assert.Equal(t, []int{0, 1, 2}, []int{categories[0].Position, categories[1].Position, categories[2].Position})
}

func TestReorderUnknownIDIsAtomic(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	a, _ := svc.Create(ctx, categoryInput("A", "A"))
	b, _ := svc.Create(ctx, categoryInput("B", "B"))

	err := svc.Reorder(ctx, []string{b.ID, "missing", a.ID})
	assert.Error(t, err)

	// The failed reorder left every position untouched.
	categories, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{a.ID, b.ID}, []string{categories[0].ID, categories[1].ID})
	assert.Equal(t, []int{0, 1}, []int{categories[0].Position, categories[1].Position})
}

func TestReorderEmptySequence(t *testing.T) {
	svc := newCatalogService(t)

	err := svc.Reorder(context.Background(), nil)
	var vErr *helpers.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

// Deleting a category leaves a gap in the position sequence; the next full
// reorder restores density.
func TestDeleteLeavesGapUntilNextReorder(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	a, _ := svc.Create(ctx, categoryInput("A", "A"))
	b, _ := svc.Create(ctx, categoryInput("B", "B"))
	c, _ := svc.Create(ctx, categoryInput("C", "C"))

	assert.NoError(t, svc.Delete(ctx, b.ID))

	categories, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, []int{0, 2}, []int{categories[0].Position, categories[1].Position})

	assert.NoError(t, svc.Reorder(ctx, []string{c.ID, a.ID}))
	categories, err = svc.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1}, []int{categories[0].Position, categories[1].Position})
	assert.Equal(t, c.ID, categories[0].ID)
}

func TestDeleteUnknownCategory(t *testing.T) {
	svc := newCatalogService(t)
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrCategoryNotFound)
}

func TestUpdateCategoryReplacesImage(t *testing.T) {
	uploader := &nopUploader{}
	repo := repositories.NewCategoryRepository(getTestDB(t))
	svc := NewCatalogService(repo, uploader)
	ctx := context.Background()

	input := categoryInput("Birthday", "Narozeninové")
	input.ImageURL = "/uploads/category_images/old.jpg"
	category, err := svc.Create(ctx, input)
	assert.NoError(t, err)

	input.ImageURL = "/uploads/category_images/new.jpg"
	updated, err := svc.Update(ctx, category.ID, input)
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/category_images/new.jpg", updated.ImageURL)

	// The old blob is released only after the row update succeeded.
	assert.Equal(t, []string{"/uploads/category_images/old.jpg"}, uploader.deleted)
}
