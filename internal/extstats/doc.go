// Package extstats assembles the pages of the Chrome extensions archive: a
// paginated list of extensions ordered by user count and one detail page per
// extension.
//
// Pages are built as markup trees; rendering them is left to the caller.
package extstats
