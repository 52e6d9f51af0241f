package cart

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is one named product entry in a cart. Subtotal is always
// Price * Qty, recomputed on every mutation.
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Qty      int     `json:"qty"`
	Subtotal float64 `json:"subtotal"`
}

// Cart is an insertion-ordered list of line items. Item names are unique
// case-insensitively; the casing of the first add wins.
type Cart []LineItem

// Outcome reports the three-way result of Remove.
type Outcome int

const (
	OutcomeNotFound Outcome = iota
	OutcomeReduced
	OutcomeRemoved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRemoved:
		return "removed"
	case OutcomeReduced:
		return "reduced"
	default:
		return "not_found"
	}
}

// Add appends a new line item, or merges into an existing one matched
// case-insensitively. On merge the quantity accumulates and the unit price is
// overwritten by the latest call.
func (c *Cart) Add(name string, price float64, qty int) {
	for i := range *c {
		if strings.EqualFold((*c)[i].Name, name) {
			item := &(*c)[i]
			item.Qty += qty
			item.Price = price
			item.Subtotal = subtotal(item.Price, item.Qty)
			return
		}
	}
	*c = append(*c, LineItem{
		Name:     name,
		Price:    price,
		Qty:      qty,
		Subtotal: subtotal(price, qty),
	})
}

// Remove deletes the named line when the requested quantity covers it,
// otherwise decrements it. The match is case-insensitive.
func (c *Cart) Remove(name string, qty int) Outcome {
	for i := range *c {
		if !strings.EqualFold((*c)[i].Name, name) {
			continue
		}
		if (*c)[i].Qty <= qty {
			*c = append((*c)[:i], (*c)[i+1:]...)
			return OutcomeRemoved
		}
		item := &(*c)[i]
		item.Qty -= qty
		item.Subtotal = subtotal(item.Price, item.Qty)
		return OutcomeReduced
	}
	return OutcomeNotFound
}

// Clone returns an independent copy so snapshots never alias stored state.
func (c Cart) Clone() Cart {
	if c == nil {
		return nil
	}
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

func subtotal(price float64, qty int) float64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(qty))).InexactFloat64()
}
