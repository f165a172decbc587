// Package layout turns a generated document into pages: a title page, a table
// of contents with dotted leaders, and flowing section text with running
// headers and footers. Page breaks are decided from measured text, so the
// engine works against any Canvas that can measure strings.
package layout
