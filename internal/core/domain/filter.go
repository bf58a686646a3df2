package domain

import "github.com/shopspring/decimal"

// SortField is a column the transaction tables may be sorted on.
type SortField string

// SortOrder is the direction of a sort.
type SortOrder string

const (
	SortByDate   SortField = "data"
	SortByAmount SortField = "valor"

	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortField restricts a caller-supplied sort key to the allow-list,
// silently falling back to the date column.
func ParseSortField(raw string) SortField {
	switch SortField(raw) {
	case SortByDate, SortByAmount:
		return SortField(raw)
	}
	return SortByDate
}

// ParseSortOrder restricts a caller-supplied direction, silently falling back
// to descending.
func ParseSortOrder(raw string) SortOrder {
	switch SortOrder(raw) {
	case SortAsc, SortDesc:
		return SortOrder(raw)
	}
	return SortDesc
}

// TransactionFilter is the fully resolved predicate set applied uniformly to
// every dashboard and export query. It is built once per request; the store
// layer clones it for each aggregate instead of re-parsing parameters.
type TransactionFilter struct {
	Period Period

	// Role scoping: non-admins only see their own rows.
	RequesterID   string
	RequesterRole UserRole

	// Optional equality filters. Nil means "not filtered".
	Type          *TransactionType
	Category      *Category
	PaymentMethod *PaymentMethod

	// Optional case-insensitive substring match on the description.
	Description string

	// Optional inclusive amount bounds, independently applicable.
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal

	SortBy    SortField
	SortOrder SortOrder

	Page  int
	Limit int
}

// ScopedToOwner reports whether role scoping restricts rows to the requester.
func (f TransactionFilter) ScopedToOwner() bool {
	return f.RequesterRole != RoleAdmin
}

// Offset returns the row offset implied by Page and Limit.
func (f TransactionFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
