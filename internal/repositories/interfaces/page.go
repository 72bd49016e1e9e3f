package interfaces

// Page carries pagination and ordering for list queries. SortAsc applies to
// SortField; a zero SortField means the repository's default ordering, newest
// first.
type Page struct {
	Skip      int64
	Limit     int64
	SortField string
	SortAsc   bool
}
