package domain

import (
	"github.com/shopspring/decimal"
)

// JoinedRecord is the wide row produced by joining a household, one of its
// transactions, and the purchased product. It exists only for the duration of
// a view computation and is never persisted.
type JoinedRecord struct {
	HshdNum    int64           `json:"hshd_num"`
	BasketNum  int64           `json:"basket_num"`
	Date       string          `json:"date"`
	ProductNum int64           `json:"product_num"`
	Spend      decimal.Decimal `json:"spend"`
	Department string          `json:"department"`
	Commodity  string          `json:"commodity"`
	BrandType  string          `json:"brand_type"`

	// Columns holds the full wide row under canonical column names, including
	// demographic and product attributes that pass through untouched.
	Columns map[string]string `json:"columns"`
}
