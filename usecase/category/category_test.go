package category_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/usecase/category"
)

type fakeCategoryRepo struct {
	categories map[string]domain.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]domain.Category)}
}

func (r *fakeCategoryRepo) GetOwned(_ context.Context, id, ownerID string) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.UserID != ownerID {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *fakeCategoryRepo) List(_ context.Context, ownerID string) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range r.categories {
		if c.UserID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindByName(_ context.Context, ownerID, name, excludeID string) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.UserID == ownerID && c.Name == name && c.ID != excludeID {
			match := c
			return &match, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	r.categories[c.ID] = *c
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.categories[c.ID] = *c
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id, ownerID string) error {
	c, ok := r.categories[id]
	if !ok || c.UserID != ownerID {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func TestCreate_DuplicateNameSameOwner(t *testing.T) {
	t.Parallel()

	uc := category.New(newFakeCategoryRepo(), nil)

	if _, err := uc.Create(context.Background(), "owner-1", category.CreateInput{Name: "Work"}); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}

	_, err := uc.Create(context.Background(), "owner-1", category.CreateInput{Name: "Work"})
	if !domain.IsDomainError(err, domain.ErrCodeConflict) {
		t.Fatalf("expected conflict for a duplicate name, got %v", err)
	}
}

func TestCreate_SameNameDifferentOwners(t *testing.T) {
	t.Parallel()

	uc := category.New(newFakeCategoryRepo(), nil)

	if _, err := uc.Create(context.Background(), "owner-1", category.CreateInput{Name: "Work"}); err != nil {
		t.Fatalf("owner-1 Create returned error: %v", err)
	}
	if _, err := uc.Create(context.Background(), "owner-2", category.CreateInput{Name: "Work"}); err != nil {
		t.Fatalf("name uniqueness is per owner; owner-2 Create returned error: %v", err)
	}
}

func TestUpdate_RenameToOwnNameSucceeds(t *testing.T) {
	t.Parallel()

	uc := category.New(newFakeCategoryRepo(), nil)

	created, err := uc.Create(context.Background(), "owner-1", category.CreateInput{Name: "Home", Description: "chores"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// A no-op rename probes against the owner's other categories only, so
	// keeping the current name never conflicts with itself.
	name := "Home"
	updated, err := uc.Update(context.Background(), created.ID, "owner-1", category.UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("renaming to the current name must succeed, got %v", err)
	}
	if updated.Description != "chores" {
		t.Fatalf("untouched description was modified: %q", updated.Description)
	}
}

func TestUpdate_RenameToSiblingNameConflicts(t *testing.T) {
	t.Parallel()

	uc := category.New(newFakeCategoryRepo(), nil)

	if _, err := uc.Create(context.Background(), "owner-1", category.CreateInput{Name: "Work"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	second, err := uc.Create(context.Background(), "owner-1", category.CreateInput{Name: "Home"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	name := "Work"
	_, err = uc.Update(context.Background(), second.ID, "owner-1", category.UpdateInput{Name: &name})
	if !domain.IsDomainError(err, domain.ErrCodeConflict) {
		t.Fatalf("expected conflict when taking a sibling's name, got %v", err)
	}
}

func TestOwnership_NonOwnerSeesNotFound(t *testing.T) {
	t.Parallel()

	repo := newFakeCategoryRepo()
	uc := category.New(repo, nil)

	created, err := uc.Create(context.Background(), "owner-1", category.CreateInput{Name: "Private"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := uc.GetByID(context.Background(), created.ID, "intruder"); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("GetByID as non-owner: expected not-found, got %v", err)
	}
	if err := uc.Delete(context.Background(), created.ID, "intruder"); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("Delete as non-owner: expected not-found, got %v", err)
	}
	if _, ok := repo.categories[created.ID]; !ok {
		t.Fatal("the category must survive the non-owner's delete attempt")
	}
}
