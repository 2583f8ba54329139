package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collecto-app/collecto-backend/internal/adapter/postgres/category"
	"github.com/collecto-app/collecto-backend/internal/adapter/postgres/testhelper"
	"github.com/collecto-app/collecto-backend/internal/domain"
)

// newRepo is a test helper that sets up the DB and returns a ready Repo.
func newRepo(t *testing.T) (*category.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return category.New(pool), pool
}

func uniqueName(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	name := uniqueName("Books")

	got, err := repo.Create(ctx, user.ID, name)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if got.ID == 0 {
		t.Error("ID should not be zero")
	}
	if got.OwnerID != user.ID {
		t.Errorf("OwnerID mismatch: got %d, want %d", got.OwnerID, user.ID)
	}
	if got.Name != name {
		t.Errorf("Name mismatch: got %q, want %q", got.Name, name)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should not be zero")
	}
}

func TestRepo_Create_DuplicateNameSameOwner(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	name := uniqueName("Vinyl")

	if _, err := repo.Create(ctx, user.ID, name); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := repo.Create(ctx, user.ID, name)
	assertIsDomainError(t, err, domain.ErrAlreadyExists)
}

func TestRepo_Create_SameNameDifferentOwners(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u1 := testhelper.SeedUser(t, pool)
	u2 := testhelper.SeedUser(t, pool)
	name := uniqueName("Stamps")

	if _, err := repo.Create(ctx, u1.ID, name); err != nil {
		t.Fatalf("Create for u1: %v", err)
	}
	if _, err := repo.Create(ctx, u2.ID, name); err != nil {
		t.Fatalf("Create for u2 should succeed, got: %v", err)
	}
}

// ---------------------------------------------------------------------------
// ExistsByName / Count
// ---------------------------------------------------------------------------

func TestRepo_ExistsByName(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	name := uniqueName("Coins")

	exists, err := repo.ExistsByName(ctx, user.ID, name)
	if err != nil {
		t.Fatalf("ExistsByName: %v", err)
	}
	if exists {
		t.Error("expected false before creation")
	}

	if _, err := repo.Create(ctx, user.ID, name); err != nil {
		t.Fatalf("Create: %v", err)
	}

	exists, err = repo.ExistsByName(ctx, user.ID, name)
	if err != nil {
		t.Fatalf("ExistsByName: %v", err)
	}
	if !exists {
		t.Error("expected true after creation")
	}
}

func TestRepo_Count(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)

	count, err := repo.Count(ctx, user.ID)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0, got %d", count)
	}

	testhelper.SeedCategory(t, pool, user.ID, uniqueName("A"))
	testhelper.SeedCategory(t, pool, user.ID, uniqueName("B"))

	count, err = repo.Count(ctx, user.ID)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2, got %d", count)
	}
}

// ---------------------------------------------------------------------------
// AddAttributes / GetByID
// ---------------------------------------------------------------------------

func TestRepo_AddAttributes_PositionsAppend(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	cat := testhelper.SeedCategory(t, pool, user.ID, uniqueName("Books"), "Author")

	attrs, err := repo.AddAttributes(ctx, cat.ID, []domain.AttributeDef{
		{Name: "Year", Type: domain.TypeNumber},
		{Name: "Read on", Type: domain.TypeDate},
	})
	if err != nil {
		t.Fatalf("AddAttributes: %v", err)
	}

	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}
	if attrs[0].Position != 1 || attrs[1].Position != 2 {
		t.Errorf("expected positions 1,2 after existing attribute, got %d,%d",
			attrs[0].Position, attrs[1].Position)
	}
}

func TestRepo_AddAttributes_MissingCategory(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	// Non-existent category_id triggers FK violation -> ErrNotFound.
	_, err := repo.AddAttributes(ctx, 999999999, []domain.AttributeDef{
		{Name: "Orphan", Type: domain.TypeString},
	})
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_GetByID_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	cat := testhelper.SeedCategory(t, pool, user.ID, uniqueName("Books"), "Author", "Year")

	got, err := repo.GetByID(ctx, user.ID, cat.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	if got.Name != cat.Name {
		t.Errorf("Name mismatch: got %q, want %q", got.Name, cat.Name)
	}
	if len(got.Attributes) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(got.Attributes))
	}
	if got.Attributes[0].Name != "Author" || got.Attributes[1].Name != "Year" {
		t.Errorf("attributes out of order: %q, %q", got.Attributes[0].Name, got.Attributes[1].Name)
	}
}

func TestRepo_GetByID_OtherOwnerHidden(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)
	cat := testhelper.SeedCategory(t, pool, owner.ID, uniqueName("Private"))

	// Not-owned reads report not-found, never the category.
	_, err := repo.GetByID(ctx, other.ID, cat.ID)
	assertIsDomainError(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestRepo_List_OwnerScopedAndSorted(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)

	b := testhelper.SeedCategory(t, pool, owner.ID, "B-"+uuid.New().String()[:8])
	a := testhelper.SeedCategory(t, pool, owner.ID, "A-"+uuid.New().String()[:8])
	testhelper.SeedCategory(t, pool, other.ID, uniqueName("Elsewhere"))

	got, err := repo.List(ctx, owner.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}
	if got[0].ID != a.ID || got[1].ID != b.ID {
		t.Errorf("expected name order [%d %d], got [%d %d]", a.ID, b.ID, got[0].ID, got[1].ID)
	}
}

// ---------------------------------------------------------------------------
// DeleteCascade
// ---------------------------------------------------------------------------

func TestRepo_DeleteCascade_RemovesEverything(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	cat := testhelper.SeedCategory(t, pool, user.ID, uniqueName("Books"), "Author")
	item := testhelper.SeedItem(t, pool, user.ID, cat.ID, map[int64]string{
		cat.Attributes[0].ID: "Tolkien",
	})

	if err := repo.DeleteCascade(ctx, user.ID, cat.ID); err != nil {
		t.Fatalf("DeleteCascade: %v", err)
	}

	for _, q := range []struct {
		name string
		sql  string
		arg  int64
	}{
		{"category", "SELECT count(*) FROM categories WHERE id = $1", cat.ID},
		{"attributes", "SELECT count(*) FROM category_attributes WHERE category_id = $1", cat.ID},
		{"items", "SELECT count(*) FROM items WHERE category_id = $1", cat.ID},
		{"values", "SELECT count(*) FROM item_attribute_values WHERE item_id = $1", item.ID},
	} {
		var count int
		if err := pool.QueryRow(ctx, q.sql, q.arg).Scan(&count); err != nil {
			t.Fatalf("count %s: %v", q.name, err)
		}
		if count != 0 {
			t.Errorf("expected no %s rows left, got %d", q.name, count)
		}
	}
}

func TestRepo_DeleteCascade_LeavesSiblings(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	doomed := testhelper.SeedCategory(t, pool, user.ID, uniqueName("Doomed"))
	kept := testhelper.SeedCategory(t, pool, user.ID, uniqueName("Kept"), "Name")
	keptItem := testhelper.SeedItem(t, pool, user.ID, kept.ID, map[int64]string{
		kept.Attributes[0].ID: "still here",
	})

	if err := repo.DeleteCascade(ctx, user.ID, doomed.ID); err != nil {
		t.Fatalf("DeleteCascade: %v", err)
	}

	var count int
	if err := pool.QueryRow(ctx,
		"SELECT count(*) FROM item_attribute_values WHERE item_id = $1", keptItem.ID,
	).Scan(&count); err != nil {
		t.Fatalf("count kept values: %v", err)
	}
	if count != 1 {
		t.Errorf("sibling category data should survive, got %d values", count)
	}
}

func TestRepo_DeleteCascade_NotOwned(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)
	cat := testhelper.SeedCategory(t, pool, owner.ID, uniqueName("Private"), "Secret")

	err := repo.DeleteCascade(ctx, other.ID, cat.ID)
	assertIsDomainError(t, err, domain.ErrNotFound)

	var count int
	if err := pool.QueryRow(ctx,
		"SELECT count(*) FROM category_attributes WHERE category_id = $1", cat.ID,
	).Scan(&count); err != nil {
		t.Fatalf("count attributes: %v", err)
	}
	if count != 1 {
		t.Errorf("attributes must survive a not-owned delete, got %d", count)
	}
}

func assertIsDomainError(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got: %v", target, err)
	}
}
