// Package insights computes the analytical views served to the dashboard:
// per-household transaction detail, monthly spend trend, brand-preference
// distribution, organic split, top-commodity monthly trend, and frequent
// commodity co-purchases.
//
// All views are pure functions over an immutable snapshot. The household
// detail lookup filters households before joining so a single-household
// request never materializes the full joined table; the dashboard views share
// one full inner join of transactions, households, and products.
//
// Rows whose join keys carry the missing marker never match and are dropped,
// matching the reporting use case, which only cares about fully resolved
// records. Per-row unparseable values (a spend amount, a date) are excluded
// from the affected aggregate instead of aborting the view.
package insights
