package domain

// Product is one row of the uploaded offer sheet. Products are immutable
// after load; the upload order is preserved.
type Product struct {
	Name      string
	Price     string
	OfferDate string
	Barcode   string
}

const ean13Length = 13

// HasEAN13 reports whether the product carries a printable EAN-13 barcode:
// exactly 13 characters, all numeric. Anything else is skipped silently
// when generating barcode assets.
func (p Product) HasEAN13() bool {
	if len(p.Barcode) != ean13Length {
		return false
	}
	for _, r := range p.Barcode {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Catalog is the uploaded product batch the session is working on. The
// rendering service keeps the file; this side keeps the parsed preview.
type Catalog struct {
	Filename      string
	Products      []Product
	TotalProducts int
	TotalProblems int
}
