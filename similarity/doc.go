// Package similarity compares LBP histogram signatures.
//
// Histograms are L1-normalised into probability vectors before any metric is
// applied, so trajectories of different length remain comparable. The
// package also provides a 1-nearest-neighbor classifier over labelled
// reference signatures, the typical downstream consumer of a histogram.
//
// Metrics (all symmetric, all zero for identical inputs):
//
//	L1            Σ|p−q|                      (gonum floats.Distance, L=1)
//	Euclidean     √Σ(p−q)²                    (gonum floats.Distance, L=2)
//	Cosine        1 − p·q / (‖p‖‖q‖)
//	ChiSquare     ½ Σ (p−q)² / (p+q)
//	Intersection  1 − Σ min(p,q)
//	Hellinger     √(1 − Σ√(pq))               (gonum stat.Hellinger)
//	JensenShannon ½KL(p‖m) + ½KL(q‖m)         (gonum stat.JensenShannon)
//
// Errors:
//
//   - ErrZeroHistogram: a histogram with no counts cannot be normalised.
//   - ErrUnknownMetric: ParseMetric or Distance got an unsupported metric.
//   - ErrNoReferences:  Nearest or Rank got an empty reference list.
package similarity
