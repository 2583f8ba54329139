// Package category implements the category schema repository using
// PostgreSQL: categories plus their ordered attribute definitions.
package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/collecto-app/collecto-backend/internal/adapter/postgres"
	"github.com/collecto-app/collecto-backend/internal/domain"
)

// Repo provides category and attribute persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO categories (owner_id, name)
VALUES ($1, $2)
RETURNING id, owner_id, name, created_at, updated_at`

const existsByNameSQL = `
SELECT EXISTS (SELECT 1 FROM categories WHERE owner_id = $1 AND name = $2)`

const getByIDSQL = `
SELECT id, owner_id, name, created_at, updated_at
FROM categories
WHERE id = $1 AND owner_id = $2`

const listSQL = `
SELECT id, name
FROM categories
WHERE owner_id = $1
ORDER BY name`

const countSQL = `SELECT count(*) FROM categories WHERE owner_id = $1`

const insertAttributeSQL = `
INSERT INTO category_attributes (category_id, name, attribute_type, position)
VALUES ($1, $2, $3, $4)
RETURNING id, category_id, name, attribute_type, position`

const listAttributesSQL = `
SELECT id, category_id, name, attribute_type, position
FROM category_attributes
WHERE category_id = $1
ORDER BY position, id`

const maxAttributePositionSQL = `
SELECT COALESCE(MAX(position), -1) FROM category_attributes WHERE category_id = $1`

// Deletion order matters: values -> items -> attributes -> category.
// Run inside one transaction by the caller.
const deleteValuesByCategorySQL = `
DELETE FROM item_attribute_values v
USING items i
WHERE v.item_id = i.id AND i.category_id = $1`

const deleteItemsByCategorySQL = `DELETE FROM items WHERE category_id = $1`

const deleteAttributesByCategorySQL = `DELETE FROM category_attributes WHERE category_id = $1`

const deleteCategorySQL = `DELETE FROM categories WHERE id = $1 AND owner_id = $2`

const ownsCategorySQL = `
SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1 AND owner_id = $2)`

// Create inserts a new category without attributes.
// Returns domain.ErrAlreadyExists if the owner already has a category with
// the same name (unique index is the final authority under concurrency).
func (r *Repo) Create(ctx context.Context, ownerID int64, name string) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Category
	err := querier.QueryRow(ctx, createSQL, ownerID, name).
		Scan(&c.ID, &c.OwnerID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "category", 0)
	}

	c.Attributes = []domain.Attribute{}
	return &c, nil
}

// ExistsByName reports whether the owner already has a category with the name.
func (r *Repo) ExistsByName(ctx context.Context, ownerID int64, name string) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsByNameSQL, ownerID, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("category exists by name: %w", err)
	}

	return exists, nil
}

// AddAttributes appends attribute definitions to a category in order, after
// any existing ones. Duplicate names are permitted. Returns the persisted
// attributes in insertion order.
func (r *Repo) AddAttributes(ctx context.Context, categoryID int64, defs []domain.AttributeDef) ([]domain.Attribute, error) {
	if len(defs) == 0 {
		return []domain.Attribute{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var maxPos int
	if err := querier.QueryRow(ctx, maxAttributePositionSQL, categoryID).Scan(&maxPos); err != nil {
		return nil, fmt.Errorf("max attribute position: %w", err)
	}

	attrs := make([]domain.Attribute, 0, len(defs))
	for i, def := range defs {
		var a domain.Attribute
		err := querier.QueryRow(ctx, insertAttributeSQL, categoryID, def.Name, def.Type, maxPos+1+i).
			Scan(&a.ID, &a.CategoryID, &a.Name, &a.Type, &a.Position)
		if err != nil {
			return nil, postgres.MapError(err, "attribute", categoryID)
		}
		attrs = append(attrs, a)
	}

	return attrs, nil
}

// GetByID returns a category with its attributes, filtered by owner.
// Returns domain.ErrNotFound if the category does not exist or belongs to
// another user — the two cases are indistinguishable on purpose.
func (r *Repo) GetByID(ctx context.Context, ownerID, categoryID int64) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Category
	err := querier.QueryRow(ctx, getByIDSQL, categoryID, ownerID).
		Scan(&c.ID, &c.OwnerID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "category", categoryID)
	}

	attrs, err := r.listAttributes(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("category %d attributes: %w", categoryID, err)
	}
	c.Attributes = attrs

	return &c, nil
}

// List returns category summaries for an owner ordered by name.
// Returns an empty slice (not nil) when the owner has no categories.
func (r *Repo) List(ctx context.Context, ownerID int64) ([]domain.CategorySummary, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	result := []domain.CategorySummary{}
	for rows.Next() {
		var s domain.CategorySummary
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return result, nil
}

// Count returns the number of categories for an owner.
func (r *Repo) Count(ctx context.Context, ownerID int64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countSQL, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}

	return count, nil
}

// DeleteCascade removes a category together with its attributes, items and
// item values. The caller must run it inside a transaction so the cascade
// is all-or-nothing. Returns domain.ErrNotFound if the category does not
// exist or belongs to another user.
func (r *Repo) DeleteCascade(ctx context.Context, ownerID, categoryID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	// Ownership is checked before any child rows are touched.
	var owns bool
	if err := querier.QueryRow(ctx, ownsCategorySQL, categoryID, ownerID).Scan(&owns); err != nil {
		return postgres.MapError(err, "category", categoryID)
	}
	if !owns {
		return fmt.Errorf("category %d: %w", categoryID, domain.ErrNotFound)
	}

	if _, err := querier.Exec(ctx, deleteValuesByCategorySQL, categoryID); err != nil {
		return postgres.MapError(err, "category", categoryID)
	}
	if _, err := querier.Exec(ctx, deleteItemsByCategorySQL, categoryID); err != nil {
		return postgres.MapError(err, "category", categoryID)
	}
	if _, err := querier.Exec(ctx, deleteAttributesByCategorySQL, categoryID); err != nil {
		return postgres.MapError(err, "category", categoryID)
	}

	tag, err := querier.Exec(ctx, deleteCategorySQL, categoryID, ownerID)
	if err != nil {
		return postgres.MapError(err, "category", categoryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %d: %w", categoryID, domain.ErrNotFound)
	}

	return nil
}

// listAttributes returns a category's attributes in schema order.
func (r *Repo) listAttributes(ctx context.Context, categoryID int64) ([]domain.Attribute, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAttributesSQL, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttributes(rows)
}

// scanAttributes scans attribute rows in query order.
func scanAttributes(rows pgx.Rows) ([]domain.Attribute, error) {
	result := []domain.Attribute{}
	for rows.Next() {
		var a domain.Attribute
		if err := rows.Scan(&a.ID, &a.CategoryID, &a.Name, &a.Type, &a.Position); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
