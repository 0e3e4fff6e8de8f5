package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlySpend is one point of the monthly spend trend: total spend across
// all households for one calendar month. Month is formatted as "2006-01".
type MonthlySpend struct {
	Month string          `json:"month"`
	Spend decimal.Decimal `json:"spend"`
}

// OrganicSplit reports the row count per distinct ORGANIC value. The source
// product data may omit the ORGANIC column entirely; Present distinguishes
// "no organic data in this dataset" from an empty distribution.
type OrganicSplit struct {
	Present bool           `json:"present"`
	Counts  map[string]int `json:"counts,omitempty"`
}

// CommodityTrendRow is one month of the top-commodity pivot. Spend is
// parallel to CommodityTrend.Commodities; combinations with no purchases
// carry a zero value.
type CommodityTrendRow struct {
	Month string            `json:"month"`
	Spend []decimal.Decimal `json:"spend"`
}

// CommodityTrend is the monthly spend pivot restricted to the most frequent
// commodities. Commodities are listed in rank order, most frequent first.
type CommodityTrend struct {
	Commodities []string            `json:"commodities"`
	Rows        []CommodityTrendRow `json:"rows"`
}

// CommodityPair is an unordered pair of distinct commodities observed
// together in at least one basket, keyed canonically with First < Second.
type CommodityPair struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Count  int    `json:"count"`
}

// DashboardViews bundles the aggregate views computed over the fully joined
// dataset. Raw counts are the contract here; percentages are left to the
// presentation layer.
type DashboardViews struct {
	MonthlySpend      []MonthlySpend  `json:"monthly_spend"`
	BrandDistribution map[string]int  `json:"brand_distribution"`
	OrganicSplit      OrganicSplit    `json:"organic_split"`
	TopCommodityTrend CommodityTrend  `json:"top_commodity_trend"`
	CrossSellPairs    []CommodityPair `json:"cross_sell_pairs"`
}
