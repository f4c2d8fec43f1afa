package pricing

import "katalog/internal/models"

// MinProfitMargin is the lowest accepted profit margin, in percent.
const MinProfitMargin = 55.0

// ComputePrice derives the selling price from cost price and profit margin,
// replacing whatever price the caller supplied.
func ComputePrice(p *models.Product) {
	p.Price = p.CostPrice + p.CostPrice*p.ProfitMargin/100
}

// ValidatePriceOrdering reports whether both the sale price and the
// promotional price exceed the computed price. Call ComputePrice first.
func ValidatePriceOrdering(p *models.Product) bool {
	return p.SalePrice > p.Price && p.PromotionalPrice > p.Price
}

// ValidateProfitMargin reports whether the profit margin meets
// MinProfitMargin. The upper bound (100%) is the field validator's concern.
func ValidateProfitMargin(p *models.Product) bool {
	return p.ProfitMargin >= MinProfitMargin
}
