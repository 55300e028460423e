// Package javanav builds and queries a name-to-location index over trees of
// Javadoc HTML output, so a class name can be resolved to its documentation
// page. It derives fully-qualified class names from file paths (it never
// reads HTML content), merges the results of independently-cached roots into
// one in-memory index, and memoizes each root's scan as a versioned record
// on disk.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or mechanism (e.g., sqlite/, fs/, cache/).
package javanav
