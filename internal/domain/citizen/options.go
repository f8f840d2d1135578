package citizen

import "fmt"

// Order names one of the index's sorted views.
type Order string

const (
	OrderByID       Order = "id"
	OrderByAge      Order = "age"
	OrderByLastName Order = "last_name"
)

// ParseOrder validates an order name.
func ParseOrder(s string) (Order, error) {
	switch o := Order(s); o {
	case OrderByID, OrderByAge, OrderByLastName:
		return o, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// LoadResult summarizes a bulk load.
type LoadResult struct {
	BatchID  string `json:"batch_id"`
	Added    int    `json:"added"`
	Rejected int    `json:"rejected"`
}
