package item

// Filter defines sorting and pagination for item list queries.
type Filter struct {
	// SortBy determines the sort column: "created_at", "updated_at".
	// Default: "created_at".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "ASC" (insertion order).
	SortOrder string

	// Limit is the maximum number of items to return. 0 means no limit.
	Limit int

	// Offset is the number of items to skip.
	Offset int
}

const (
	sortByCreatedAt = "created_at"
	sortByUpdatedAt = "updated_at"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	switch f.SortBy {
	case sortByCreatedAt, sortByUpdatedAt:
		// valid
	default:
		f.SortBy = sortByCreatedAt
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderASC
	}

	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
