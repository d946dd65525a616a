package domain

// Sale represents a recorded sale of a timber item. TimberID must reference
// an existing timber at creation time; the reference is not re-checked
// afterward, so a sale can outlive the timber it points at.
type Sale struct {
	ID        uint64
	TimberID  uint64
	Quantity  uint64
	Price     uint64
	CreatedAt uint64
	UpdatedAt *uint64
}

// SaleFilter selects sales during a scan. Nil fields match anything; set
// fields must all match.
type SaleFilter struct {
	TimberID *uint64
	Quantity *uint64
	Price    *uint64
}

// Matches reports whether s satisfies every set field of the filter.
func (f SaleFilter) Matches(s Sale) bool {
	if f.TimberID != nil && s.TimberID != *f.TimberID {
		return false
	}
	if f.Quantity != nil && s.Quantity != *f.Quantity {
		return false
	}
	if f.Price != nil && s.Price != *f.Price {
		return false
	}
	return true
}
