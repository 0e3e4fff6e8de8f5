package dataset

import (
	"strings"

	"retailpulse/internal/errors"
)

// Canonical column names shared by the loader and the view computations.
// All downstream code refers only to these.
const (
	ColHshdNum    = "HSHD_NUM"
	ColBasketNum  = "BASKET_NUM"
	ColProductNum = "PRODUCT_NUM"
	ColDate       = "DATE"
	ColSpend      = "SPEND"
	ColDepartment = "DEPARTMENT"
	ColCommodity  = "COMMODITY"
	ColBrandType  = "BRAND_TYPE"
	ColOrganic    = "ORGANIC"
)

// Format identifies the tabular encoding of a dataset source stream.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// AliasRule maps legacy column-name variants onto one canonical name.
// Aliases are tried in order and the first one present wins. A rule is a
// no-op when the canonical column already exists, which keeps normalization
// idempotent. Required marks rules whose canonical column must exist after
// resolution.
type AliasRule struct {
	Canonical string
	Aliases   []string
	Required  bool
}

// Schema declares everything the loader needs to know about one dataset:
// source format, required columns, alias-resolution rules, and which columns
// are numeric join keys.
type Schema struct {
	Dataset  string
	Format   Format
	Required []string
	Aliases  []AliasRule
	Keys     []string
}

// HouseholdSchema declares the households dataset: HSHD_NUM is both the
// required column and the join key; demographic attributes pass through.
func HouseholdSchema() Schema {
	return Schema{
		Dataset:  "households",
		Format:   FormatCSV,
		Required: []string{ColHshdNum},
		Keys:     []string{ColHshdNum},
	}
}

// TransactionSchema declares the transactions dataset. The purchase date
// arrives under one of two legacy names and must resolve to DATE.
func TransactionSchema() Schema {
	return Schema{
		Dataset:  "transactions",
		Format:   FormatCSV,
		Required: []string{ColHshdNum, ColBasketNum, ColProductNum, ColSpend},
		Aliases: []AliasRule{
			{Canonical: ColDate, Aliases: []string{"PURCHASE_", "PURCHASE_DATE"}, Required: true},
		},
		Keys: []string{ColHshdNum, ColProductNum},
	}
}

// ProductSchema declares the products dataset. BRAND_TY resolution is
// best-effort: the canonical BRAND_TYPE may already be present, or brand
// data may be absent entirely. ORGANIC is optional and never declared here.
func ProductSchema() Schema {
	return Schema{
		Dataset:  "products",
		Format:   FormatCSV,
		Required: []string{ColProductNum, ColDepartment, ColCommodity},
		Aliases: []AliasRule{
			{Canonical: ColBrandType, Aliases: []string{"BRAND_TY"}},
		},
		Keys: []string{ColProductNum},
	}
}

// Normalize returns a copy of t with every column name trimmed and
// upper-cased and the schema's alias rules applied. Normalizing an already
// normalized table is a no-op. A required alias group with no recognized
// source column, or a missing required column, yields a *errors.SchemaError.
func Normalize(t *Table, s Schema) (*Table, error) {
	out := t.Clone()

	for _, col := range out.Columns {
		canon := strings.ToUpper(strings.TrimSpace(col))
		if canon != col {
			out.rename(col, canon)
		}
	}

	for _, rule := range s.Aliases {
		if out.HasColumn(rule.Canonical) {
			continue
		}
		resolved := false
		for _, alias := range rule.Aliases {
			if out.HasColumn(alias) {
				out.rename(alias, rule.Canonical)
				resolved = true
				break
			}
		}
		if !resolved && rule.Required {
			return nil, errors.NewSchemaError(s.Dataset, rule.Canonical,
				"no recognized source column for "+rule.Canonical)
		}
	}

	for _, col := range s.Required {
		if !out.HasColumn(col) {
			return nil, errors.NewSchemaError(s.Dataset, col, "required column missing")
		}
	}

	return out, nil
}
