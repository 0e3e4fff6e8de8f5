package insights

import (
	"sort"

	"github.com/shopspring/decimal"

	"retailpulse/internal/dataset"
	"retailpulse/internal/errors"
	"retailpulse/internal/snapshot"
	"retailpulse/pkg/contracts/domain"
)

// topN bounds both the commodity trend pivot and the cross-sell ranking.
const topN = 5

const monthFormat = "2006-01"

// ComputeDashboard computes the five aggregate views over the fully joined
// table. A structurally absent required column is fatal; per-row unparseable
// values only reduce the affected aggregate.
func ComputeDashboard(snap *snapshot.Snapshot) (*domain.DashboardViews, error) {
	if err := requireViewColumns(snap); err != nil {
		return nil, err
	}

	rows := join(snap, nil, false)

	return &domain.DashboardViews{
		MonthlySpend:      monthlySpend(rows),
		BrandDistribution: brandDistribution(rows),
		OrganicSplit:      organicSplit(snap, rows),
		TopCommodityTrend: topCommodityTrend(rows),
		CrossSellPairs:    crossSellPairs(rows),
	}, nil
}

// requireViewColumns verifies the columns the aggregate views group or sum
// over. The load schemas guarantee most of them; BRAND_TYPE is only
// best-effort at load time and must be checked here.
func requireViewColumns(snap *snapshot.Snapshot) error {
	checks := []struct {
		table  *dataset.Table
		column string
	}{
		{snap.Transactions, dataset.ColSpend},
		{snap.Transactions, dataset.ColDate},
		{snap.Products, dataset.ColCommodity},
		{snap.Products, dataset.ColBrandType},
	}
	for _, c := range checks {
		if !c.table.HasColumn(c.column) {
			return errors.NewSchemaError(c.table.Name, c.column, "required for dashboard views")
		}
	}
	return nil
}

// monthlySpend sums spend per calendar month. Months appear only when the
// data has at least one dated, parseable spend row for them.
func monthlySpend(rows []joinedRow) []domain.MonthlySpend {
	totals := make(map[string]decimal.Decimal)
	for _, r := range rows {
		if !r.dateOK || !r.spendOK {
			continue
		}
		m := r.date.Format(monthFormat)
		totals[m] = totals[m].Add(r.spend)
	}

	months := make([]string, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]domain.MonthlySpend, 0, len(months))
	for _, m := range months {
		out = append(out, domain.MonthlySpend{Month: m, Spend: totals[m]})
	}
	return out
}

// brandDistribution counts joined rows per distinct BRAND_TYPE value.
func brandDistribution(rows []joinedRow) map[string]int {
	counts := make(map[string]int)
	for _, r := range rows {
		if r.brand == "" {
			continue
		}
		counts[r.brand]++
	}
	return counts
}

// organicSplit counts joined rows per distinct ORGANIC value when the
// products dataset carries the column at all; otherwise the view is absent.
func organicSplit(snap *snapshot.Snapshot, rows []joinedRow) domain.OrganicSplit {
	if !snap.Products.HasColumn(dataset.ColOrganic) {
		return domain.OrganicSplit{}
	}
	counts := make(map[string]int)
	for _, r := range rows {
		if r.organic == "" {
			continue
		}
		counts[r.organic]++
	}
	return domain.OrganicSplit{Present: true, Counts: counts}
}

// topCommodityTrend ranks commodities by row count, keeps the topN most
// frequent (ties broken by first-encountered order in the scan), and pivots
// their spend by month. Missing month/commodity combinations carry zero.
func topCommodityTrend(rows []joinedRow) domain.CommodityTrend {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, r := range rows {
		if r.commodity == "" {
			continue
		}
		if _, seen := counts[r.commodity]; !seen {
			firstSeen[r.commodity] = i
		}
		counts[r.commodity]++
	}

	ranked := make([]string, 0, len(counts))
	for c := range counts {
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	rank := make(map[string]int, len(ranked))
	for i, c := range ranked {
		rank[c] = i
	}

	cells := make(map[string][]decimal.Decimal)
	for _, r := range rows {
		col, ok := rank[r.commodity]
		if !ok || !r.dateOK || !r.spendOK {
			continue
		}
		m := r.date.Format(monthFormat)
		if cells[m] == nil {
			cells[m] = zeroRow(len(ranked))
		}
		cells[m][col] = cells[m][col].Add(r.spend)
	}

	months := make([]string, 0, len(cells))
	for m := range cells {
		months = append(months, m)
	}
	sort.Strings(months)

	trend := domain.CommodityTrend{Commodities: ranked}
	for _, m := range months {
		trend.Rows = append(trend.Rows, domain.CommodityTrendRow{Month: m, Spend: cells[m]})
	}
	return trend
}

func zeroRow(n int) []decimal.Decimal {
	row := make([]decimal.Decimal, n)
	for i := range row {
		row[i] = decimal.Zero
	}
	return row
}

// crossSellPairs counts, per unordered commodity pair, the baskets in which
// both appear. Duplicate commodities within one basket count once. Returns
// the topN pairs by count descending, ties broken by the pair's
// lexicographic key.
func crossSellPairs(rows []joinedRow) []domain.CommodityPair {
	type basketKey struct {
		hshd   int64
		basket string
	}
	baskets := make(map[basketKey]map[string]struct{})
	for _, r := range rows {
		if r.commodity == "" {
			continue
		}
		k := basketKey{hshd: r.hshd, basket: r.basketRaw}
		if baskets[k] == nil {
			baskets[k] = make(map[string]struct{})
		}
		baskets[k][r.commodity] = struct{}{}
	}

	type pairKey struct {
		first, second string
	}
	pairCounts := make(map[pairKey]int)
	for _, commodities := range baskets {
		if len(commodities) < 2 {
			continue
		}
		distinct := make([]string, 0, len(commodities))
		for c := range commodities {
			distinct = append(distinct, c)
		}
		sort.Strings(distinct)
		for i := 0; i < len(distinct); i++ {
			for j := i + 1; j < len(distinct); j++ {
				pairCounts[pairKey{first: distinct[i], second: distinct[j]}]++
			}
		}
	}

	pairs := make([]domain.CommodityPair, 0, len(pairCounts))
	for k, n := range pairCounts {
		pairs = append(pairs, domain.CommodityPair{First: k.first, Second: k.second, Count: n})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		if pairs[i].First != pairs[j].First {
			return pairs[i].First < pairs[j].First
		}
		return pairs[i].Second < pairs[j].Second
	})
	if len(pairs) > topN {
		pairs = pairs[:topN]
	}
	return pairs
}
