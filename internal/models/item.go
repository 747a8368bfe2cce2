package models

// Item is the database row for a stocked product. image_url is NOT NULL with
// an empty-string default, so it maps to a plain string.
type Item struct {
	ItemID    string `db:"item_id"`
	Name      string `db:"name"`
	CostPrice int64  `db:"cost_price"`
	SellPrice int64  `db:"sell_price"`
	Stock     int64  `db:"stock"`
	ImageURL  string `db:"image_url"`
	AuditFields
}
