package domain

// Category is the species of timber stocked in the yard.
type Category string

const (
	CategoryCyprus Category = "cyprus"
	CategoryPine   Category = "pine"
	CategoryOak    Category = "oak"
	CategoryCedar  Category = "cedar"
	CategorySpruce Category = "spruce"
)

var categories = []Category{
	CategoryCyprus,
	CategoryPine,
	CategoryOak,
	CategoryCedar,
	CategorySpruce,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, v := range categories {
		if c == v {
			return true
		}
	}
	return false
}

// CategoryValues lists every valid category as strings, for error messages.
func CategoryValues() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

// Dimension is the cross-section size of a timber item, e.g. "2x4".
type Dimension string

var dimensions = []Dimension{
	"2x4", "2x6", "2x8", "2x10",
	"3x2", "3x4",
	"4x2", "4x4", "4x6",
	"6x2", "6x4",
	"8x2", "8x4",
	"10x2", "10x4",
}

// Valid reports whether d is a known dimension.
func (d Dimension) Valid() bool {
	for _, v := range dimensions {
		if d == v {
			return true
		}
	}
	return false
}

// DimensionValues lists every valid dimension as strings, for error messages.
func DimensionValues() []string {
	out := make([]string, len(dimensions))
	for i, d := range dimensions {
		out[i] = string(d)
	}
	return out
}

// Timber represents an inventory item. ID and CreatedAt are immutable after
// creation; UpdatedAt stays nil until the first update. Timestamps are
// nanoseconds since the Unix epoch.
type Timber struct {
	ID        uint64
	Category  Category
	Dimension Dimension
	Quantity  uint64
	CreatedAt uint64
	UpdatedAt *uint64
}

// TimberFilter selects timbers during a scan. Nil fields match anything;
// set fields must all match.
type TimberFilter struct {
	Category  *Category
	Dimension *Dimension
	Quantity  *uint64
}

// Matches reports whether t satisfies every set field of the filter.
func (f TimberFilter) Matches(t Timber) bool {
	if f.Category != nil && t.Category != *f.Category {
		return false
	}
	if f.Dimension != nil && t.Dimension != *f.Dimension {
		return false
	}
	if f.Quantity != nil && t.Quantity != *f.Quantity {
		return false
	}
	return true
}
