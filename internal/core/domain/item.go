package domain

// Item represents a stocked product with its pricing and quantity on hand.
// Stock is mutated only through transaction application; the item management
// endpoints own every other field.
type Item struct {
	ItemID    string `json:"itemID"` // Primary Key (UUID)
	Name      string `json:"name"`
	CostPrice int64  `json:"costPrice"` // integer currency units, >= 0
	SellPrice int64  `json:"sellPrice"` // integer currency units, >= 0
	Stock     int64  `json:"stock"`     // invariant: never negative
	ImageURL  string `json:"imageUrl,omitempty"`
	AuditFields
}

// StockCapitalValue is the item's contribution to stock capital (stock x cost price).
func (i Item) StockCapitalValue() int64 {
	return i.Stock * i.CostPrice
}
