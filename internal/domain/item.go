package domain

import "time"

// Item is one record conforming to a category's schema. Its category is
// fixed at creation; the owner always equals the category's owner.
type Item struct {
	ID         int64
	CategoryID int64
	OwnerID    int64
	Values     []AttributeValue
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AttributeValue is one stored value bound to an item and an attribute.
// The value is kept as text; interpretation per the attribute's type tag is
// the reader's responsibility (see ParseTypedValue).
type AttributeValue struct {
	ID      int64
	ItemID  int64
	FieldID int64
	Value   string

	// AttributeName is resolved on read. Nil when the attribute no longer
	// exists; the read degrades instead of failing.
	AttributeName *string
}

// ValueInput is one (attribute id, raw value) pair supplied on item writes.
type ValueInput struct {
	FieldID int64
	Value   string
}
