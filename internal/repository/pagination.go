package repository

// Page is a normalized page/size window. Services normalize raw query input
// before it gets here: Number >= 1 and Size within the endpoint's bounds.
type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int { return (p.Number - 1) * p.Size }

// PageResult carries a slice of items and the total count matching the query.
// I return the total so clients can compute pagination without an extra round trip.
type PageResult[T any] struct {
	Items []T
	Total int
}

// TotalPages is ceil(total/size); zero only when size is zero, which no
// normalized Page produces.
func TotalPages(total, size int) int {
	if size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
