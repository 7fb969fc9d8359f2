// Package vectara implements the Indexer port against the Vectara v2
// REST API. Documents are submitted as "structured" documents with
// their sections intact.
package vectara
