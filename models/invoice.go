package models

// Invoice is the single proforma invoice record: header fields, the ordered
// product table and the derived totals.
type Invoice struct {
	Date              string `json:"date" db:"invoice_date"`
	ConsignerName     string `json:"consignerName" db:"consigner_name"`
	ConsignerAddress  string `json:"consignerAddress" db:"consigner_address"`
	ConsignerEmail    string `json:"consignerEmail" db:"consigner_email"`
	ConsigneeName     string `json:"consigneeName" db:"consignee_name"`
	ConsigneeLocation string `json:"consigneeLocation" db:"consignee_location"`
	ConsigneeGst      string `json:"consigneeGst" db:"consignee_gst"`
	Transport         string `json:"transport" db:"transport"`
	Note              string `json:"note" db:"note"`

	// A nil Product means the record has not been loaded yet.
	Product []ProductEntry `json:"product" db:"-"`

	// Computed fields
	GrossTotal string `json:"grossTotal" db:"gross_total"`
	Gst        string `json:"gst" db:"gst"`
	NetTotal   string `json:"netTotal" db:"net_total"`
}

// Header field names, addressed by their JSON names.
const (
	FieldDate              = "date"
	FieldConsignerName     = "consignerName"
	FieldConsignerAddress  = "consignerAddress"
	FieldConsignerEmail    = "consignerEmail"
	FieldConsigneeName     = "consigneeName"
	FieldConsigneeLocation = "consigneeLocation"
	FieldConsigneeGst      = "consigneeGst"
	FieldTransport         = "transport"
	FieldNote              = "note"
)

// Loaded reports whether the invoice carries a product table.
func (i *Invoice) Loaded() bool {
	return i != nil && i.Product != nil
}

// Clone returns a deep copy of the invoice.
func (i *Invoice) Clone() *Invoice {
	if i == nil {
		return nil
	}
	c := *i
	if i.Product != nil {
		c.Product = make([]ProductEntry, len(i.Product))
		copy(c.Product, i.Product)
	}
	return &c
}

// HeaderField returns a pointer to the header field with the given JSON
// name, or nil when name is not a header field.
func (i *Invoice) HeaderField(name string) *string {
	switch name {
	case FieldDate:
		return &i.Date
	case FieldConsignerName:
		return &i.ConsignerName
	case FieldConsignerAddress:
		return &i.ConsignerAddress
	case FieldConsignerEmail:
		return &i.ConsignerEmail
	case FieldConsigneeName:
		return &i.ConsigneeName
	case FieldConsigneeLocation:
		return &i.ConsigneeLocation
	case FieldConsigneeGst:
		return &i.ConsigneeGst
	case FieldTransport:
		return &i.Transport
	case FieldNote:
		return &i.Note
	}
	return nil
}
