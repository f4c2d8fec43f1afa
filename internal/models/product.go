package models

// Product represents a catalog product.
//
// Price is derived from CostPrice and ProfitMargin on every create and
// update; a caller-supplied price is always overwritten. The lower bound of
// ProfitMargin (55%) is checked by the pricing policy so its rejection
// carries the dedicated margin message instead of a generic field error;
// only the upper bound lives in the validate tag.
type Product struct {
	ID               uint    `json:"id" gorm:"primaryKey"`
	Name             string  `json:"name" validate:"required"`
	Description      string  `json:"description" validate:"required"`
	CostPrice        float64 `json:"cost_price" validate:"required,gt=0"`
	ProfitMargin     float64 `json:"profit_margin" validate:"lte=100"`
	Price            float64 `json:"price"`
	SalePrice        float64 `json:"sale_price" validate:"required,gt=0"`
	PromotionalPrice float64 `json:"promotional_price" validate:"required,gt=0"`
	Category         string  `json:"category" validate:"required"`
	Stock            int     `json:"stock" validate:"gte=0"`
}
