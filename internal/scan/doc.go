// Package scan locates target directories: directories that directly contain
// at least one file whose extension is in an allow-list.
//
// Extension matching is exact and case-sensitive (".JPG" does not match
// ".jpg"). A directory qualifies only through its own files; qualifying
// descendants do not make their parents targets. Traversal errors, including
// permission failures on nested directories, abort the scan.
package scan
