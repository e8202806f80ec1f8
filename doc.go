// Package clusterkit is a toolbox for fitting cluster models to numeric
// data — from hard partitional clustering to full probabilistic mixtures.
//
// What is clusterkit?
//
//	A focused, deterministic library that brings together:
//		• Gaussian mixture models fitted by Expectation-Maximization,
//		  with full covariance matrices and a principled failure policy
//		• K-means (Lloyd's algorithm with k-means++ seeding)
//		• Binomial (coin-bias) mixtures — the scalar EM variant
//		• Cluster-evaluation metrics: purity and Gini impurity
//		• A small CSV importer for numeric datasets
//
// Why choose clusterkit?
//
//   - Reproducible – every stochastic step takes an explicit seed;
//     equal seeds produce identical fits, bit for bit
//   - Honest about failure – singular covariances and collapsed
//     components surface as typed errors with the last valid model
//     attached, never as NaN-filled results
//   - Numerically careful – responsibilities are computed in log space
//     (log-sum-exp), covariance algebra goes through one Cholesky kernel
//
// Everything is organized under small subpackages:
//
//	linalg/   — SPD Cholesky kernel: log-determinant, solve, Mahalanobis
//	gmm/      — Gaussian mixture fitting via EM (the heart of the library)
//	kmeans/   — partitional clustering, k-means++ initialization
//	binomial/ — mixtures of binomial draws (two-coins EM)
//	eval/     — external evaluation of clusterings against known labels
//	dataset/  — CSV → [][]float64 loading helpers
//
// Quick sketch:
//
//	data, _ := dataset.FromCSV("iris.csv", dataset.DefaultOptions())
//	model, diag, err := gmm.Fit(data, 3, gmm.DefaultOptions())
//	if err != nil { ... }
//	comp, post, _ := model.Predict(data[0])
//
//	go get github.com/katalvlaran/clusterkit
package clusterkit
