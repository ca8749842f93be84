package core

import (
	"fmt"
	"sort"
)

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

type (
	Granularity string

	// Bucket is a time-partitioned slice of the ledger: its expense-only
	// total plus the category breakdown of its own transactions.
	Bucket struct {
		Key        string
		Total      Money
		ByCategory []CategoryAmount
	}

	// BucketStats are the cross-bucket figures used for "you spent most
	// on X" captions. Average is integer division over minor units,
	// truncated toward zero; sub-unit precision is not kept.
	BucketStats struct {
		Average int64
		Max     Money
		MaxKey  string
	}

	Timeline struct {
		Buckets []Bucket
		Stats   BucketStats
	}
)

// bucketKey assigns a transaction to its bucket. All keys sort
// lexicographically in chronological order within a granularity.
//
// Week keys carry the ISO week number of the transaction's own date with no
// year qualifier, so week 1 of consecutive years shares a bucket. That
// mirrors the legacy reports this replaces; consumers only feed in
// single-period ranges, where the collapse cannot surface.
func bucketKey(t Transaction, g Granularity) string {
	switch g {
	case GranularityDay:
		return t.Date.Format("2006-01-02")
	case GranularityWeek:
		_, week := t.Date.ISOWeek()
		return fmt.Sprintf("W%02d", week)
	case GranularityMonth:
		return t.Date.Format("2006-01")
	}
	panic(fmt.Sprintf("unknown granularity %q", g))
}

// BucketTimeline partitions transactions into day, week or month buckets.
// Bucket totals count expenses only; each bucket also carries its own
// category breakdown. Buckets come back most recent first for display, while
// the stats are computed in first-seen order so display sorting cannot bias
// which bucket wins a tie.
func BucketTimeline(transactions []Transaction, g Granularity) Timeline {
	groups := make(map[string][]Transaction)
	var order []string

	for _, t := range transactions {
		key := bucketKey(t, g)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], t)
	}

	buckets := make([]Bucket, 0, len(order))
	for _, key := range order {
		subset := groups[key]
		var total int64
		for _, t := range subset {
			if t.Category.Type != Income {
				total += t.Amount.Units
			}
		}
		buckets = append(buckets, Bucket{
			Key:        key,
			Total:      Money{Units: total},
			ByCategory: BreakdownByCategory(subset),
		})
	}

	stats := bucketStats(buckets)

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key > buckets[j].Key
	})

	return Timeline{Buckets: buckets, Stats: stats}
}

// bucketStats expects buckets in first-seen order; the first bucket to reach
// the maximum keeps it.
func bucketStats(buckets []Bucket) BucketStats {
	var stats BucketStats
	if len(buckets) == 0 {
		return stats
	}
	var sum int64
	for _, b := range buckets {
		sum += b.Total.Units
		if b.Total.Units > stats.Max.Units || stats.MaxKey == "" {
			stats.Max = b.Total
			stats.MaxKey = b.Key
		}
	}
	stats.Average = sum / int64(len(buckets))
	return stats
}
