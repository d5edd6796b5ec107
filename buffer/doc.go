// Package buffer provides pooled append-only builders for results of
// unknown final size, such as densified curves or skeleton edge lists.
package buffer
