package models

// ProductEntry is one line of the proforma invoice product table.
// Quantity and Rate are kept as entered; Amount is derived from them.
type ProductEntry struct {
	ProductName string `json:"productName" db:"product_name"`
	Quantity    string `json:"quantity" db:"quantity"`
	Packing     string `json:"packing" db:"packing"`
	Pcs         string `json:"pcs" db:"pcs"`
	Rate        string `json:"rate" db:"rate"`
	Amount      string `json:"amount" db:"amount"` // quantity x rate, two decimals
}

// Editable product fields, addressed by their JSON names.
const (
	FieldProductName = "productName"
	FieldQuantity    = "quantity"
	FieldPacking     = "packing"
	FieldPcs         = "pcs"
	FieldRate        = "rate"
	FieldAmount      = "amount"
)
