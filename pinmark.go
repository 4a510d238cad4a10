// Package pinmark captures web resources as normalized bookmark records.
// It detects the platform a page belongs to, runs a platform-specific
// extraction strategy (or a generic metadata cascade), and returns a single
// ExtractionResult with title, description, thumbnail, canonical URL,
// platform label, suggested tags and typed attachments.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/, rod/).
package pinmark
