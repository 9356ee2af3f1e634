package stockmarket

// Lot represents a single purchase of an asset. The date and unit price are
// fixed at purchase time; only the remaining quantity shrinks as sales
// consume the lot.
type Lot struct {
	Date     Date
	Quantity Quantity // remaining units, always >= 0
	Price    Money    // unit cost basis
}

// lots is the purchase history of one asset, oldest first. The order is
// load-bearing: it defines FIFO consumption and must survive persistence
// round-trips unchanged.
type lots []Lot

// total returns the sum of the remaining quantities.
func (l lots) total() Quantity {
	var sum Quantity
	for _, lot := range l {
		sum = sum.Add(lot.Quantity)
	}
	return sum
}

// consume depletes lots from the front until quantity is exhausted, and
// returns the surviving lots together with the realized profit and the sale
// revenue at marketPrice. A fully consumed lot is dropped; a partially
// consumed one keeps its date and price with a reduced quantity. The caller
// is responsible for checking that enough units are held.
func (l lots) consume(quantity Quantity, marketPrice Money) (remaining lots, profit, revenue Money) {
	remaining = make(lots, 0, len(l))
	for _, current := range l {
		if !quantity.IsPositive() {
			remaining = append(remaining, current)
			continue
		}

		sold := current.Quantity
		if quantity.LessThan(sold) {
			// Partial sale from this lot
			sold = quantity
		}

		profit = profit.Add(marketPrice.Sub(current.Price).Mul(sold))
		revenue = revenue.Add(marketPrice.Mul(sold))
		quantity = quantity.Sub(sold)

		if sold.Equal(current.Quantity) {
			// Full sale of this lot: drop it.
			continue
		}
		current.Quantity = current.Quantity.Sub(sold)
		remaining = append(remaining, current)
	}
	return remaining, profit, revenue
}
