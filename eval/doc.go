// Package eval provides external cluster-validation metrics: scores
// comparing a predicted partition against ground-truth labels.
//
// Both metrics operate on integer label slices of equal length; label
// values are opaque identifiers, so no renumbering or alignment between
// the two labelings is required.
//
//   - Purity: the fraction of points whose cluster's majority truth
//     class matches their own. 1 means every cluster is pure; small
//     clusters inflate it, so it favors over-segmentation.
//   - Gini: the size-weighted mean Gini impurity of the clusters.
//     0 means every cluster is pure; 1−1/C is the worst case for C
//     truth classes.
//
// Complexity: O(N) time and O(clusters·classes) space for either metric.
package eval
