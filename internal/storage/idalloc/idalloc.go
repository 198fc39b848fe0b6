// Package idalloc computes the next unique integer id for a record
// collection. The flat-file backend uses it on every insert; the relational
// backend relies on identity columns instead.
package idalloc

// Next returns max(existing ids) + 1, or 1 for an empty collection.
// Callers that fail to read their collection pass nil and get 1 back;
// id collision after file corruption is a documented risk, not handled here.
func Next(ids []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}
