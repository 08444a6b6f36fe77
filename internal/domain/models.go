package domain

// Product is one catalog entry. The catalog is fixed at startup; products
// never change while the process runs. Price is in minor currency units.
type Product struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description,omitempty" db:"description"`
	Price       int64  `json:"price" db:"price"`
	Currency    string `json:"currency" db:"currency"`
	Image       string `json:"image,omitempty" db:"image"`
}

// CartLine is one product in a cart. Display data and unit price are copied
// from the product at add time, so a later catalog change never reprices an
// existing cart. A persisted line always has Qty >= 1.
type CartLine struct {
	ProductID   string `json:"id" db:"product_id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description,omitempty" db:"description"`
	Price       int64  `json:"price" db:"price"`
	Currency    string `json:"currency" db:"currency"`
	Image       string `json:"image,omitempty" db:"image"`
	Qty         int64  `json:"qty" db:"qty"`
}

// NewCartLine copies product display data into a fresh line.
func NewCartLine(p Product, qty int64) CartLine {
	return CartLine{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Image:       p.Image,
		Qty:         qty,
	}
}

// ItemCount sums quantities across lines.
func ItemCount(lines []CartLine) int64 {
	var n int64
	for _, l := range lines {
		n += l.Qty
	}
	return n
}

// TotalPrice sums qty x unit price across lines, in minor units.
func TotalPrice(lines []CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Qty * l.Price
	}
	return total
}
