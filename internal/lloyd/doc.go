// Package lloyd implements k-means clustering with Lloyd's algorithm.
//
// A run moves through a small state machine:
//
//	INIT -> ASSIGN -> UPDATE -> CHECK -> DONE
//	                    ^          |
//	                    +- ASSIGN <+ CLEAR (not converged)
//
// INIT samples k centroids uniformly with replacement from the input using an
// explicitly supplied random source. ASSIGN places every point into the
// cluster with the nearest centroid (lowest index wins exact ties). UPDATE
// moves every non-empty cluster's centroid to the mean of its members; empty
// clusters keep their centroid unchanged. CHECK stops the run once no
// non-empty centroid moved by more than Tolerance. The loop is bounded by a
// maximum number of UPDATE/CHECK cycles.
//
// The package is single-threaded and keeps no state between runs.
package lloyd
