package cart

import "github.com/shopspring/decimal"

type SummaryLine struct {
	Name   string  `json:"name"`
	Qty    int     `json:"qty"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// Summary is a derived projection of the cart, recomputed on demand.
type Summary struct {
	Lines []SummaryLine `json:"lines"`
	Total float64       `json:"total"`
}

// Summarize projects the cart into display rows plus a grand total.
func (c Cart) Summarize() Summary {
	lines := make([]SummaryLine, 0, len(c))
	total := decimal.Zero
	for _, item := range c {
		lines = append(lines, SummaryLine{
			Name:   item.Name,
			Qty:    item.Qty,
			Rate:   item.Price,
			Amount: item.Subtotal,
		})
		total = total.Add(decimal.NewFromFloat(item.Subtotal))
	}
	return Summary{Lines: lines, Total: total.InexactFloat64()}
}
