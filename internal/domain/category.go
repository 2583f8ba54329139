package domain

import "time"

// Category is a user-defined schema: a named, ordered set of typed attributes.
type Category struct {
	ID         int64
	OwnerID    int64
	Name       string
	Attributes []Attribute
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Attribute is one typed field defined within a category.
// Type is an advisory tag ("string", "number", "date", ...); storage never
// enforces it against the values written later.
type Attribute struct {
	ID         int64
	CategoryID int64
	Name       string
	Type       string
	Position   int
}

// AttributeByID returns the attribute with the given id, or false if the
// category does not define it.
func (c *Category) AttributeByID(id int64) (Attribute, bool) {
	for _, a := range c.Attributes {
		if a.ID == id {
			return a, true
		}
	}
	return Attribute{}, false
}

// CategorySummary is the list-view form of a category: id and name only.
type CategorySummary struct {
	ID   int64
	Name string
}

// AttributeDef is the definition of one attribute at category-creation time.
type AttributeDef struct {
	Name string
	Type string
}
