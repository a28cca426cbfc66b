package domain

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/DRSN-tech/cosmetic-product/pkg/e"
	"github.com/shopspring/decimal"
)

const (
	ProductType   = "decorative cosmetics"
	DefaultOrigin = "Italy"

	// CurrencyLabel — подпись валюты в отформатированных ценах
	CurrencyLabel = "RUB"
)

const (
	minDiscountPercent = 0
	maxDiscountPercent = 100
)

// CosmeticProduct описывает одну единицу косметического товара.
type CosmeticProduct struct {
	ProductName  string
	Manufacturer string
	Color        string  // Оттенок
	Cost         float64 // Стоимость в рублях
	Expiry       string  // Срок годности в формате YYYY-MM-DD
	IsUsed       bool

	out io.Writer
}

func NewCosmeticProduct(productName string, manufacturer string, color string, cost float64, expiry string) *CosmeticProduct {
	return &CosmeticProduct{
		ProductName:  productName,
		Manufacturer: manufacturer,
		Color:        color,
		Cost:         cost,
		Expiry:       expiry,
		out:          os.Stdout,
	}
}

// WithOutput задаёт поток для сообщений MarkAsUsed и ApplyDiscount.
func (p *CosmeticProduct) WithOutput(w io.Writer) *CosmeticProduct {
	p.out = w
	return p
}

// DescribeShort возвращает однострочное описание товара.
func (p *CosmeticProduct) DescribeShort() string {
	cost := strconv.FormatFloat(p.Cost, 'f', -1, 64)
	if isFinite(p.Cost) {
		cost = decimal.NewFromFloat(p.Cost).String()
	}

	return fmt.Sprintf("Cosmetic product: %s, %s, %s, %s, %s",
		p.ProductName, p.Manufacturer, p.Color, cost, p.Expiry)
}

func (p *CosmeticProduct) String() string {
	return p.DescribeShort()
}

// MarkAsUsed помечает товар как использованный. Повторный вызов ничего не меняет.
func (p *CosmeticProduct) MarkAsUsed() {
	p.IsUsed = true
	p.printf("%s is now marked as used.\n", p.ProductName)
}

// IsExpired сравнивает даты как строки: для YYYY-MM-DD это совпадает с хронологическим порядком.
// Товар со сроком, равным currentDate, просроченным не считается.
func (p *CosmeticProduct) IsExpired(currentDate string) bool {
	return p.Expiry < currentDate
}

// ApplyDiscount уменьшает стоимость на discountPercent процентов.
// При значении вне диапазона 0-100 стоимость не меняется: выводится сообщение
// и возвращается e.ErrInvalidDiscount, паники нет.
func (p *CosmeticProduct) ApplyDiscount(discountPercent float64) error {
	if !(discountPercent >= minDiscountPercent && discountPercent <= maxDiscountPercent) {
		p.printf("Invalid discount percent. Allowed range: %d%%-%d%%.\n", minDiscountPercent, maxDiscountPercent)
		return e.ErrInvalidDiscount
	}

	p.Cost *= 1 - discountPercent/100
	p.printf("Discount of %s%% applied. New price: %s %s.\n",
		strconv.FormatFloat(discountPercent, 'f', -1, 64), FormatPrice(p.Cost), CurrencyLabel)

	return nil
}

// DescribeFull возвращает подробное многострочное описание товара.
func (p *CosmeticProduct) DescribeFull() string {
	status := "new"
	if p.IsUsed {
		status = "used"
	}

	return fmt.Sprintf("Product: %s\nBrand: %s\nColor: %s\nPrice: %s %s\nExpires: %s\nStatus: %s",
		p.ProductName, p.Manufacturer, p.Color, FormatPrice(p.Cost), CurrencyLabel, p.Expiry, status)
}

// FormatPrice округляет цену до копеек (half-up) и форматирует с двумя знаками после точки.
// NaN и бесконечности decimal не принимает, для них используется fmt.
func FormatPrice(cost float64) string {
	if !isFinite(cost) {
		return fmt.Sprintf("%.2f", cost)
	}

	return decimal.NewFromFloat(cost).StringFixed(2)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (p *CosmeticProduct) printf(format string, args ...any) {
	if p.out == nil {
		return
	}
	fmt.Fprintf(p.out, format, args...)
}
