package internal

import (
	"placard-server/internal/placard/domain"
)

type ProductResponse struct {
	Name      string `json:"name"`
	Price     string `json:"price"`
	OfferDate string `json:"offer_date"`
	Barcode   string `json:"barcode"`
	HasEAN13  bool   `json:"has_ean13"`
}

type CatalogResponse struct {
	Filename      string            `json:"filename"`
	Products      []ProductResponse `json:"products"`
	TotalProducts int               `json:"total_products"`
	TotalProblems int               `json:"total_problems"`
}

func ToCatalogResponse(value domain.Catalog) CatalogResponse {
	products := make([]ProductResponse, len(value.Products))
	for i, product := range value.Products {
		products[i] = ProductResponse{
			Name:      product.Name,
			Price:     product.Price,
			OfferDate: product.OfferDate,
			Barcode:   product.Barcode,
			HasEAN13:  product.HasEAN13(),
		}
	}
	return CatalogResponse{
		Filename:      value.Filename,
		Products:      products,
		TotalProducts: value.TotalProducts,
		TotalProblems: value.TotalProblems,
	}
}

type BarcodeWarmupResponse struct {
	Generated int `json:"generated"`
}
