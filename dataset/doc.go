// Package dataset loads numeric feature matrices from CSV sources into
// the [][]float64 form the clustering packages consume.
//
// A loader selects a contiguous column range (From..To inclusive), can
// skip a header row, and either rejects or silently drops rows whose
// selected cells fail to parse as floats — controlled by SkipInvalid.
//
// Complexity: O(rows·columns) time, one pass over the source.
package dataset
