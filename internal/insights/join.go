package insights

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"retailpulse/internal/dataset"
	"retailpulse/internal/snapshot"
	"retailpulse/pkg/contracts/domain"
)

// joinedRow is the internal wide row shared by the view computations.
// Typed fields are extracted once during the join; cols carries the full
// merged row and is only populated for the detail lookup.
type joinedRow struct {
	hshd       int64
	basketRaw  string
	basketNum  int64
	basketOK   bool
	dateRaw    string
	date       time.Time
	dateOK     bool
	product    int64
	spend      decimal.Decimal
	spendOK    bool
	department string
	commodity  string
	brand      string
	organic    string

	cols map[string]string
}

// dateFormats lists the date layouts observed in the source data, tried in
// order. Anything else is a missing date.
var dateFormats = []string{
	"2006-01-02",
	"02-Jan-06",
	"01/02/2006",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseSpend(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// indexKeys maps each valid key value of the column to the row indexes
// carrying it. Rows with the missing marker are left out, so they can never
// match in a join.
func indexKeys(t *dataset.Table, column string) map[int64][]int {
	idx := make(map[int64][]int)
	for i := 0; i < t.Len(); i++ {
		k, ok := t.Key(column, i)
		if !ok || !k.Valid {
			continue
		}
		idx[k.Num] = append(idx[k.Num], i)
	}
	return idx
}

// join performs the two inner equi-joins (transaction to household on
// HSHD_NUM, transaction to product on PRODUCT_NUM) in one transaction scan.
// When only is non-nil the household side is filtered to that HSHD_NUM up
// front, the push-down used by the detail lookup. withColumns requests the
// full merged row per record.
func join(snap *snapshot.Snapshot, only *int64, withColumns bool) []joinedRow {
	hhIdx := indexKeys(snap.Households, dataset.ColHshdNum)
	prodIdx := indexKeys(snap.Products, dataset.ColProductNum)

	tx := snap.Transactions
	var out []joinedRow
	for i := 0; i < tx.Len(); i++ {
		hk, _ := tx.Key(dataset.ColHshdNum, i)
		if !hk.Valid {
			continue
		}
		if only != nil && hk.Num != *only {
			continue
		}
		hhRows := hhIdx[hk.Num]
		if len(hhRows) == 0 {
			continue
		}
		pk, _ := tx.Key(dataset.ColProductNum, i)
		if !pk.Valid {
			continue
		}
		prodRows := prodIdx[pk.Num]
		if len(prodRows) == 0 {
			continue
		}
		for _, hi := range hhRows {
			for _, pi := range prodRows {
				out = append(out, buildRow(snap, i, hi, pi, hk.Num, pk.Num, withColumns))
			}
		}
	}
	return out
}

func buildRow(snap *snapshot.Snapshot, ti, hi, pi int, hshd, product int64, withColumns bool) joinedRow {
	txRow := snap.Transactions.Rows[ti]
	prodRow := snap.Products.Rows[pi]

	r := joinedRow{
		hshd:       hshd,
		product:    product,
		basketRaw:  strings.TrimSpace(txRow[dataset.ColBasketNum]),
		dateRaw:    strings.TrimSpace(txRow[dataset.ColDate]),
		department: strings.TrimSpace(prodRow[dataset.ColDepartment]),
		commodity:  strings.TrimSpace(prodRow[dataset.ColCommodity]),
		brand:      strings.TrimSpace(prodRow[dataset.ColBrandType]),
		organic:    strings.TrimSpace(prodRow[dataset.ColOrganic]),
	}
	if n, err := strconv.ParseInt(r.basketRaw, 10, 64); err == nil {
		r.basketNum = n
		r.basketOK = true
	}
	r.date, r.dateOK = parseDate(r.dateRaw)
	r.spend, r.spendOK = parseSpend(txRow[dataset.ColSpend])

	if withColumns {
		hhRow := snap.Households.Rows[hi]
		cols := make(map[string]string, len(hhRow)+len(txRow)+len(prodRow))
		for k, v := range hhRow {
			cols[k] = v
		}
		for k, v := range txRow {
			cols[k] = v
		}
		for k, v := range prodRow {
			cols[k] = v
		}
		r.cols = cols
	}

	return r
}

// lessJoined orders detail rows by (HSHD_NUM, BASKET_NUM, DATE, PRODUCT_NUM,
// DEPARTMENT, COMMODITY) ascending. Numeric baskets sort numerically and
// before unparseable ones; parsed dates sort chronologically and before
// unparseable ones.
func lessJoined(a, b joinedRow) bool {
	if a.hshd != b.hshd {
		return a.hshd < b.hshd
	}
	if c := compareBaskets(a, b); c != 0 {
		return c < 0
	}
	if c := compareDates(a, b); c != 0 {
		return c < 0
	}
	if a.product != b.product {
		return a.product < b.product
	}
	if a.department != b.department {
		return a.department < b.department
	}
	return a.commodity < b.commodity
}

func compareBaskets(a, b joinedRow) int {
	switch {
	case a.basketOK && b.basketOK:
		switch {
		case a.basketNum < b.basketNum:
			return -1
		case a.basketNum > b.basketNum:
			return 1
		}
		return 0
	case a.basketOK:
		return -1
	case b.basketOK:
		return 1
	}
	return strings.Compare(a.basketRaw, b.basketRaw)
}

func compareDates(a, b joinedRow) int {
	switch {
	case a.dateOK && b.dateOK:
		switch {
		case a.date.Before(b.date):
			return -1
		case a.date.After(b.date):
			return 1
		}
		return 0
	case a.dateOK:
		return -1
	case b.dateOK:
		return 1
	}
	return strings.Compare(a.dateRaw, b.dateRaw)
}

// LookupHousehold returns the joined, sorted detail rows for one household.
// An empty result is a valid no-data outcome, not an error.
func LookupHousehold(snap *snapshot.Snapshot, hshdNum int64) []domain.JoinedRecord {
	rows := join(snap, &hshdNum, true)
	sort.SliceStable(rows, func(i, j int) bool { return lessJoined(rows[i], rows[j]) })

	records := make([]domain.JoinedRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, domain.JoinedRecord{
			HshdNum:    r.hshd,
			BasketNum:  r.basketNum,
			Date:       r.dateRaw,
			ProductNum: r.product,
			Spend:      r.spend,
			Department: r.department,
			Commodity:  r.commodity,
			BrandType:  r.brand,
			Columns:    r.cols,
		})
	}
	return records
}
