// Package normalisers holds the per-source document mappers. Each
// normaliser knows how to flatten one source's native record into a
// domain.Document ready for indexing.
package normalisers
