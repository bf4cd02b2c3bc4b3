package internal

import (
	"placard-server/internal/placard/domain"
)

// ProductRow is one spreadsheet row as the rendering service returns it.
// The keys are the column headers of the offer sheet.
type ProductRow struct {
	Name      string `json:"Nome do produto"`
	Price     string `json:"Preço"`
	OfferDate string `json:"Data da Oferta"`
	Barcode   string `json:"Codigo de Barras"`
}

func (r ProductRow) ToDomain() domain.Product {
	return domain.Product{
		Name:      r.Name,
		Price:     r.Price,
		OfferDate: r.OfferDate,
		Barcode:   r.Barcode,
	}
}

func FromProduct(value domain.Product) ProductRow {
	return ProductRow{
		Name:      value.Name,
		Price:     value.Price,
		OfferDate: value.OfferDate,
		Barcode:   value.Barcode,
	}
}
