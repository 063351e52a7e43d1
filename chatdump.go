// Package chatdump converts rendered chat-client HTML into portable
// markdown documents. It extracts per-message author, timestamp, and body
// fragments from a page snapshot, rewrites the HTML body into a constrained
// markdown flavor (bold, italic, code, fenced code, links, quotes, lists,
// line breaks), and assembles the results into a single titled export file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, fs/).
package chatdump
