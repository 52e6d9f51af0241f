package order

import (
	"github.com/shopspring/decimal"

	"github.com/taazafoods/chatbot-backend/internal/cart"
	pkgerrors "github.com/taazafoods/chatbot-backend/pkg/errors"
)

// Customer identifies who the order is for, in the billing API's terms.
type Customer struct {
	Name    string
	Mobile  string
	Address string
}

// Item mirrors one cart line in the billing API's contract.
type Item struct {
	ItemName string  `json:"itemName"`
	Qty      int     `json:"qty"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
}

// Payload is the order document forwarded to the billing API. It is built
// fresh on every checkout attempt and never stored.
type Payload struct {
	CustomerName  string  `json:"customerName"`
	MobileNo      string  `json:"mobileNo"`
	Address       string  `json:"address"`
	Items         []Item  `json:"items"`
	Total         float64 `json:"total"`
	PaymentMethod string  `json:"paymentMethod"`
}

// Assemble builds the billing payload from the session's cart. An empty cart
// is rejected before any payload is constructed, so checkout never reaches
// the billing upstream with nothing to bill.
func Assemble(customer Customer, c cart.Cart, paymentMethod string) (Payload, error) {
	if len(c) == 0 {
		return Payload{}, pkgerrors.New(pkgerrors.CodeEmptyCart, "cart is empty")
	}

	items := make([]Item, 0, len(c))
	total := decimal.Zero
	for _, line := range c {
		items = append(items, Item{
			ItemName: line.Name,
			Qty:      line.Qty,
			Rate:     line.Price,
			Amount:   line.Subtotal,
		})
		total = total.Add(decimal.NewFromFloat(line.Subtotal))
	}

	return Payload{
		CustomerName:  customer.Name,
		MobileNo:      customer.Mobile,
		Address:       customer.Address,
		Items:         items,
		Total:         total.InexactFloat64(),
		PaymentMethod: paymentMethod,
	}, nil
}
