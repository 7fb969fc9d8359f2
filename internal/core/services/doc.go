// Package services contains the core application logic.
//
// Crawler drives the paginated retrieval of issues, their flattening
// into documents, and submission to the index. It depends only on the
// driven ports; the Jira connector, the Vectara adapter and the run
// store are injected at wiring time.
package services
