package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collecto-app/collecto-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	email := "testuser-" + uniqueSuffix() + "@example.com"
	hash := "$2a$10$abcdefghijklmnopqrstuvabcdefghijklmnopqrstuvabcdefghi"

	var user domain.User
	err := pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, email, created_at, updated_at`,
		email, hash,
	).Scan(&user.ID, &user.Email, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}
	user.PasswordHash = &hash

	return user
}

// SeedCategory creates a category with attributes for attrNames, all typed
// "string", in declaration order. Returns a filled domain.Category.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, ownerID int64, name string, attrNames ...string) domain.Category {
	t.Helper()
	ctx := context.Background()

	var category domain.Category
	err := pool.QueryRow(ctx,
		`INSERT INTO categories (owner_id, name)
		 VALUES ($1, $2)
		 RETURNING id, owner_id, name, created_at, updated_at`,
		ownerID, name,
	).Scan(&category.ID, &category.OwnerID, &category.Name, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert category: %v", err)
	}

	for i, attrName := range attrNames {
		var attr domain.Attribute
		err := pool.QueryRow(ctx,
			`INSERT INTO category_attributes (category_id, name, attribute_type, position)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id, category_id, name, attribute_type, position`,
			category.ID, attrName, domain.TypeString, i,
		).Scan(&attr.ID, &attr.CategoryID, &attr.Name, &attr.Type, &attr.Position)
		if err != nil {
			t.Fatalf("testhelper: SeedCategory insert attribute[%d]: %v", i, err)
		}
		category.Attributes = append(category.Attributes, attr)
	}

	return category
}

// SeedItem creates an item in the category with one value per entry of
// values, keyed by attribute ID. Returns a filled domain.Item.
func SeedItem(t *testing.T, pool *pgxpool.Pool, ownerID int64, categoryID int64, values map[int64]string) domain.Item {
	t.Helper()
	ctx := context.Background()

	var item domain.Item
	err := pool.QueryRow(ctx,
		`INSERT INTO items (category_id, owner_id)
		 VALUES ($1, $2)
		 RETURNING id, category_id, owner_id, created_at, updated_at`,
		categoryID, ownerID,
	).Scan(&item.ID, &item.CategoryID, &item.OwnerID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert item: %v", err)
	}

	for fieldID, value := range values {
		var v domain.AttributeValue
		err := pool.QueryRow(ctx,
			`INSERT INTO item_attribute_values (item_id, field_id, value)
			 VALUES ($1, $2, $3)
			 RETURNING id, item_id, field_id, value`,
			item.ID, fieldID, value,
		).Scan(&v.ID, &v.ItemID, &v.FieldID, &v.Value)
		if err != nil {
			t.Fatalf("testhelper: SeedItem insert value(field=%d): %v", fieldID, err)
		}
		item.Values = append(item.Values, v)
	}

	return item
}

// SeedFollow creates a follow edge from follower to followed.
func SeedFollow(t *testing.T, pool *pgxpool.Pool, followerID, followedID int64) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO follows (follower_id, followed_id) VALUES ($1, $2)`,
		followerID, followedID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFollow insert follow: %v", err)
	}
}
