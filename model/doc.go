// Package model defines the value types shared by the clustering engine and
// its callers.
//
// # Types
//
//   - Point: an ordered sequence of D real coordinates
//   - Cluster: a centroid Point plus the points assigned to it in the last pass
//
// Every Point participating in one run must have the same dimension D.
// Clusters returned from a run are owned by the caller; the engine keeps no
// reference to them.
package model
