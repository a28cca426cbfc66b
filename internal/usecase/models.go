package usecase

import "github.com/DRSN-tech/cosmetic-product/internal/domain"

// ProductSeed — исходные данные товара витрины.
type ProductSeed struct {
	Name         string
	Manufacturer string
	Color        string
	Cost         float64
	Expiry       string
}

// Catalog — набор товаров, над которыми выполняется демонстрация.
type Catalog struct {
	LipGloss  *domain.CosmeticProduct
	EyeShadow *domain.CosmeticProduct
	Concealer *domain.CosmeticProduct
}

var (
	LipGlossSeed = ProductSeed{
		Name:         "Lip gloss DEFENCE COLOR LIP PLUMP",
		Manufacturer: "BioNike",
		Color:        "002 Rose Gold",
		Cost:         2950.00,
		Expiry:       "2025-08-22",
	}
	EyeShadowSeed = ProductSeed{
		Name:         "Eye shadow Ombre 4 Couleurs",
		Manufacturer: "Clarins",
		Color:        "05 Jade Gradation",
		Cost:         4889.50,
		Expiry:       "2024-10-01",
	}
	ConcealerSeed = ProductSeed{
		Name:         "Concealer Pure beauty fluid",
		Manufacturer: "Astra Make-Up",
		Color:        "Vanilla",
		Cost:         1290.00,
		Expiry:       "2026-06-17",
	}
)

func (s ProductSeed) ToProduct() *domain.CosmeticProduct {
	return domain.NewCosmeticProduct(s.Name, s.Manufacturer, s.Color, s.Cost, s.Expiry)
}

func NewCatalog() *Catalog {
	return &Catalog{
		LipGloss:  LipGlossSeed.ToProduct(),
		EyeShadow: EyeShadowSeed.ToProduct(),
		Concealer: ConcealerSeed.ToProduct(),
	}
}
