package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vengerka/cakemaster-api/app/helpers"
	"github.com/vengerka/cakemaster-api/app/models"
	"github.com/vengerka/cakemaster-api/app/repositories"
	"gorm.io/gorm"
)

type galleryFixture struct {
	db  *gorm.DB
	svc *GalleryService

	birthday *models.Category
	wedding  *models.Category
}

func newGalleryFixture(t *testing.T) *galleryFixture {
	t.Helper()
	db := getTestDB(t)
	categoryRepo := repositories.NewCategoryRepository(db)
	galleryRepo := repositories.NewGalleryRepository(db)
	svc := NewGalleryService(galleryRepo, categoryRepo, &nopUploader{})

	ctx := context.Background()
	birthday := &models.Category{Name: models.Localized{EN: "Birthday", CS: "Narozeninové"}}
	wedding := &models.Category{Name: models.Localized{EN: "Wedding", CS: "Svatební"}}
	assert.NoError(t, categoryRepo.Create(ctx, birthday))
	assert.NoError(t, categoryRepo.Create(ctx, wedding))

	return &galleryFixture{db: db, svc: svc, birthday: birthday, wedding: wedding}
}

// seedImage inserts an image with an explicit creation time so tests control
// the listing order.
func (f *galleryFixture) seedImage(t *testing.T, id string, createdAt time.Time, categories ...*models.Category) {
	t.Helper()
	image := &models.GalleryImage{
		ID:        id,
		ImageURL:  "/uploads/gallery/" + id + ".jpg",
		CreatedAt: createdAt,
	}
	for _, c := range categories {
		image.Categories = append(image.Categories, *c)
	}
	assert.NoError(t, f.db.Create(image).Error)
}

func TestPublicGalleryCursorWalk(t *testing.T) {
	f := newGalleryFixture(t)
	ctx := context.Background()

	base := time.Now().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		f.seedImage(t, fmt.Sprintf("img-%02d", i), base.Add(time.Duration(i)*time.Minute), f.birthday)
	}
	// Two rows sharing one timestamp exercise the id tie-break.
	shared := base.Add(10 * time.Minute)
	f.seedImage(t, "tie-a", shared, f.birthday)
	f.seedImage(t, "tie-b", shared, f.birthday)

	// Reference: everything in one oversized page.
	full, err := f.svc.Public(ctx, f.birthday.ID, 50, "")
	assert.NoError(t, err)
	assert.Len(t, full.Images, 9)
	assert.Empty(t, full.NextCursor)

	// Walk in pages of 2 and verify no row is dropped or repeated.
	var walked []string
	cursor := ""
	for {
		page, err := f.svc.Public(ctx, f.birthday.ID, 2, cursor)
		assert.NoError(t, err)
		for _, img := range page.Images {
			walked = append(walked, img.ID)
		}
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	expected := make([]string, 0, len(full.Images))
	for _, img := range full.Images {
		expected = append(expected, img.ID)
	}
	assert.Equal(t, expected, walked)

	// Newest first, tie broken by id descending.
	assert.Equal(t, "tie-b", walked[0])
	assert.Equal(t, "tie-a", walked[1])
}

func TestPublicGalleryPartialPageHasNoCursor(t *testing.T) {
	f := newGalleryFixture(t)
	ctx := context.Background()

	base := time.Now().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		f.seedImage(t, fmt.Sprintf("img-%d", i), base.Add(time.Duration(i)*time.Minute), f.birthday)
	}

	page, err := f.svc.Public(ctx, f.birthday.ID, 9, "")
	assert.NoError(t, err)
	assert.Len(t, page.Images, 3)
	assert.Empty(t, page.NextCursor)
}

func TestPublicGalleryUnknownCategory(t *testing.T) {
	f := newGalleryFixture(t)

	f.seedImage(t, "img-1", time.Now(), f.birthday)

	page, err := f.svc.Public(context.Background(), "missing", 9, "")
	assert.NoError(t, err)
	assert.Empty(t, page.Images)
	assert.Empty(t, page.NextCursor)
}

func TestPublicGalleryMalformedCursor(t *testing.T) {
	f := newGalleryFixture(t)

	_, err := f.svc.Public(context.Background(), f.birthday.ID, 9, "not-a-cursor")
	var vErr *helpers.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestAdminGalleryCountAndPaging(t *testing.T) {
	f := newGalleryFixture(t)
	ctx := context.Background()

	base := time.Now().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		f.seedImage(t, fmt.Sprintf("bday-%d", i), base.Add(time.Duration(i)*time.Minute), f.birthday)
	}
	f.seedImage(t, "wed-0", base.Add(time.Hour), f.wedding)

	// Unfiltered: every image counted once.
	page, err := f.svc.Admin(ctx, nil, 1, 4)
	assert.NoError(t, err)
	assert.Equal(t, int64(6), page.TotalCount)
	assert.Len(t, page.Images, 4)

	second, err := f.svc.Admin(ctx, nil, 2, 4)
	assert.NoError(t, err)
	assert.Equal(t, int64(6), second.TotalCount)
	assert.Len(t, second.Images, 2)

	// Any-of filter over both categories matches everything too.
	both, err := f.svc.Admin(ctx, []string{f.birthday.ID, f.wedding.ID}, 1, 50)
	assert.NoError(t, err)
	assert.Equal(t, int64(6), both.TotalCount)

	// Single-category filter narrows both rows and count.
	weddings, err := f.svc.Admin(ctx, []string{f.wedding.ID}, 1, 50)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), weddings.TotalCount)
	assert.Equal(t, "wed-0", weddings.Images[0].ID)
}

func TestMultiCategoryImageCountedOnce(t *testing.T) {
	f := newGalleryFixture(t)
	ctx := context.Background()

	f.seedImage(t, "both-0", time.Now(), f.birthday, f.wedding)

	page, err := f.svc.Admin(ctx, []string{f.birthday.ID, f.wedding.ID}, 1, 50)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalCount)
	assert.Len(t, page.Images, 1)
}

// A category deleted after images were tagged with it disappears from the
// populated records without erroring, and stops matching as a filter.
func TestDeletedCategoryDropsOut(t *testing.T) {
	f := newGalleryFixture(t)
	ctx := context.Background()
	categoryRepo := repositories.NewCategoryRepository(f.db)

	f.seedImage(t, "img-1", time.Now(), f.birthday, f.wedding)
	assert.NoError(t, categoryRepo.Delete(ctx, f.wedding.ID))

	page, err := f.svc.Public(ctx, f.birthday.ID, 9, "")
	assert.NoError(t, err)
	assert.Len(t, page.Images, 1)
	assert.Len(t, page.Images[0].Categories, 1)
	assert.Equal(t, f.birthday.ID, page.Images[0].Categories[0].ID)

	byDeleted, err := f.svc.Public(ctx, f.wedding.ID, 9, "")
	assert.NoError(t, err)
	assert.Empty(t, byDeleted.Images)
}

func TestCreateImageRequiresCategory(t *testing.T) {
	f := newGalleryFixture(t)

	_, err := f.svc.Create(context.Background(), ImageInput{ImageURL: "/uploads/gallery/x.jpg"})
	var vErr *helpers.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "categories")

	_, err = f.svc.Create(context.Background(), ImageInput{CategoryIDs: []string{f.birthday.ID}})
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "imageUrl")
}

func TestCreateImageUnknownCategory(t *testing.T) {
	f := newGalleryFixture(t)

	_, err := f.svc.Create(context.Background(), ImageInput{
		ImageURL:    "/uploads/gallery/x.jpg",
		CategoryIDs: []string{"missing"},
	})
	var vErr *helpers.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestDeleteImageReportsNextPage(t *testing.T) {
	f := newGalleryFixture(t)
	ctx := context.Background()

	f.seedImage(t, "img-1", time.Now(), f.birthday)

	// Sole item on page 3: the admin view steps back a page.
	nextPage, err := f.svc.Delete(ctx, "img-1", 3, 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, nextPage)

	_, err = f.svc.Delete(ctx, "img-1", 1, 1)
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestNextPageAfterDelete(t *testing.T) {
	cases := []struct {
		page, itemsOnPage, want int
	}{
		{page: 1, itemsOnPage: 1, want: 1},
		{page: 1, itemsOnPage: 5, want: 1},
		{page: 2, itemsOnPage: 1, want: 1},
		{page: 3, itemsOnPage: 1, want: 2},
		{page: 3, itemsOnPage: 2, want: 3},
		{page: 0, itemsOnPage: 0, want: 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NextPageAfterDelete(tc.page, tc.itemsOnPage),
			"page=%d itemsOnPage=%d", tc.page, tc.itemsOnPage)
	}
}
