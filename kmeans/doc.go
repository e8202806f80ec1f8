// Package kmeans implements hard partitional clustering with Lloyd's
// algorithm and k-means++ seeding.
//
// Relationship to gmm:
//
//	K-means is the degenerate special case of a Gaussian mixture —
//	spherical unit covariances and hard (0/1) responsibilities — which
//	is why it shares the iterate-until-convergence shape but needs no
//	covariance estimation and no density evaluation.
//
// Algorithm outline:
//  1. Seed K centroids with k-means++: the first uniformly at random,
//     each next one with probability proportional to the squared
//     distance from the nearest already-chosen centroid.
//  2. Assign every point to its nearest centroid (Euclidean).
//  3. Move each centroid to the mean of its points; a cluster left
//     empty is reseeded to the point farthest from its own centroid.
//  4. Repeat 2–3 until the largest centroid shift drops below
//     Tolerance or MaxIterations fires.
//
// Determinism: all randomness flows from Options.Seed (0 ⇒ fixed default
// seed); equal seeds produce identical partitions.
//
// Complexity: O(iterations·N·K·D) time, O(N + K·D) space.
package kmeans
