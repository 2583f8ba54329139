// Package item implements the Item repository using PostgreSQL:
// items plus their attribute values, always scoped by owner.
package item

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/collecto-app/collecto-backend/internal/adapter/postgres"
	"github.com/collecto-app/collecto-backend/internal/domain"
)

// Repo provides item and attribute-value persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// psql builds queries with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const createSQL = `
INSERT INTO items (category_id, owner_id)
VALUES ($1, $2)
RETURNING id, category_id, owner_id, created_at, updated_at`

const getByIDSQL = `
SELECT id, category_id, owner_id, created_at, updated_at
FROM items
WHERE id = $1 AND owner_id = $2`

const insertValueSQL = `
INSERT INTO item_attribute_values (item_id, field_id, value)
VALUES ($1, $2, $3)
RETURNING id, item_id, field_id, value`

// Values join on the attribute with LEFT JOIN: an attribute removed after
// the value was written degrades to a NULL name instead of dropping the row.
const getValuesSQL = `
SELECT v.id, v.item_id, v.field_id, v.value, a.name
FROM item_attribute_values v
LEFT JOIN category_attributes a ON a.id = v.field_id
WHERE v.item_id = $1
ORDER BY v.id`

const deleteValuesSQL = `DELETE FROM item_attribute_values WHERE item_id = $1`

const ownsItemSQL = `
SELECT EXISTS (SELECT 1 FROM items WHERE id = $1 AND owner_id = $2)`

const deleteItemSQL = `DELETE FROM items WHERE id = $1 AND owner_id = $2`

const touchItemSQL = `UPDATE items SET updated_at = now() WHERE id = $1`

// Create inserts a new item row without values.
func (r *Repo) Create(ctx context.Context, ownerID, categoryID int64) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var it domain.Item
	err := querier.QueryRow(ctx, createSQL, categoryID, ownerID).
		Scan(&it.ID, &it.CategoryID, &it.OwnerID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "item", 0)
	}

	it.Values = []domain.AttributeValue{}
	return &it, nil
}

// GetByID returns the item row (no values), filtered by owner.
// Returns domain.ErrNotFound if absent or owned by another user.
func (r *Repo) GetByID(ctx context.Context, ownerID, itemID int64) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var it domain.Item
	err := querier.QueryRow(ctx, getByIDSQL, itemID, ownerID).
		Scan(&it.ID, &it.CategoryID, &it.OwnerID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}

	return &it, nil
}

// GetDetail returns the item with all values and resolved attribute names.
func (r *Repo) GetDetail(ctx context.Context, ownerID, itemID int64) (*domain.Item, error) {
	it, err := r.GetByID(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	values, err := r.getValues(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("item %d values: %w", itemID, err)
	}
	it.Values = values

	return it, nil
}

// InsertValues persists the given values for an item in input order.
// The attribute-membership check is the caller's responsibility.
func (r *Repo) InsertValues(ctx context.Context, itemID int64, values []domain.ValueInput) ([]domain.AttributeValue, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	result := make([]domain.AttributeValue, 0, len(values))
	for _, v := range values {
		var av domain.AttributeValue
		err := querier.QueryRow(ctx, insertValueSQL, itemID, v.FieldID, v.Value).
			Scan(&av.ID, &av.ItemID, &av.FieldID, &av.Value)
		if err != nil {
			return nil, postgres.MapError(err, "item_value", itemID)
		}
		result = append(result, av)
	}

	return result, nil
}

// DeleteValues removes all values of an item. Run inside the same
// transaction as the subsequent InsertValues when replacing a value set.
func (r *Repo) DeleteValues(ctx context.Context, itemID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteValuesSQL, itemID); err != nil {
		return postgres.MapError(err, "item_value", itemID)
	}

	return nil
}

// Touch bumps the item's updated_at after a value replacement.
func (r *Repo) Touch(ctx context.Context, itemID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, touchItemSQL, itemID); err != nil {
		return postgres.MapError(err, "item", itemID)
	}

	return nil
}

// List returns item summaries for an owner and category. Each summary
// carries only the first value (by insertion order) as a preview, with its
// attribute name resolved.
func (r *Repo) List(ctx context.Context, ownerID, categoryID int64, filter Filter) ([]*domain.Item, error) {
	filter.normalize()

	builder := psql.
		Select("i.id", "i.category_id", "i.owner_id", "i.created_at", "i.updated_at").
		From("items i").
		Where(sq.Eq{"i.owner_id": ownerID, "i.category_id": categoryID}).
		OrderBy(fmt.Sprintf("i.%s %s, i.id %s", filter.SortBy, filter.SortOrder, filter.SortOrder))

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	for _, it := range items {
		preview, err := r.firstValue(ctx, it.ID)
		if err != nil {
			return nil, fmt.Errorf("item %d preview: %w", it.ID, err)
		}
		it.Values = preview
	}

	return items, nil
}

// ListDetailed returns all items of a category with full value sets and
// resolved attribute names. Used by cross-user browsing and export.
func (r *Repo) ListDetailed(ctx context.Context, ownerID, categoryID int64) ([]*domain.Item, error) {
	items, err := r.List(ctx, ownerID, categoryID, Filter{})
	if err != nil {
		return nil, err
	}

	for _, it := range items {
		values, err := r.getValues(ctx, it.ID)
		if err != nil {
			return nil, fmt.Errorf("item %d values: %w", it.ID, err)
		}
		it.Values = values
	}

	return items, nil
}

// Delete removes an item and its values, filtered by owner. Run inside a
// transaction. Returns domain.ErrNotFound if absent or owned by another user.
func (r *Repo) Delete(ctx context.Context, ownerID, itemID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	// Ownership is checked before the unscoped value delete.
	var owns bool
	if err := querier.QueryRow(ctx, ownsItemSQL, itemID, ownerID).Scan(&owns); err != nil {
		return postgres.MapError(err, "item", itemID)
	}
	if !owns {
		return fmt.Errorf("item %d: %w", itemID, domain.ErrNotFound)
	}

	if _, err := querier.Exec(ctx, deleteValuesSQL, itemID); err != nil {
		return postgres.MapError(err, "item", itemID)
	}

	tag, err := querier.Exec(ctx, deleteItemSQL, itemID, ownerID)
	if err != nil {
		return postgres.MapError(err, "item", itemID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %d: %w", itemID, domain.ErrNotFound)
	}

	return nil
}

// getValues returns an item's values in insertion order with resolved names.
func (r *Repo) getValues(ctx context.Context, itemID int64) ([]domain.AttributeValue, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getValuesSQL, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanValues(rows)
}

// firstValue returns at most one value: the first by insertion order.
func (r *Repo) firstValue(ctx context.Context, itemID int64) ([]domain.AttributeValue, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getValuesSQL+` LIMIT 1`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanValues(rows)
}

// scanItems scans item rows without values.
func scanItems(rows pgx.Rows) ([]*domain.Item, error) {
	result := []*domain.Item{}
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.CategoryID, &it.OwnerID, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		it.Values = []domain.AttributeValue{}
		result = append(result, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// scanValues scans value rows with the LEFT-JOINed attribute name.
func scanValues(rows pgx.Rows) ([]domain.AttributeValue, error) {
	result := []domain.AttributeValue{}
	for rows.Next() {
		var (
			av   domain.AttributeValue
			name pgtype.Text
		)
		if err := rows.Scan(&av.ID, &av.ItemID, &av.FieldID, &av.Value, &name); err != nil {
			return nil, err
		}
		if name.Valid {
			av.AttributeName = &name.String
		}
		result = append(result, av)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
