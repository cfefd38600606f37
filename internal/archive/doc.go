// Package archive runs the external par2 tool against a single target
// directory.
//
// Every operation passes the target as the child's working directory and
// never changes the working directory of the calling process, so operations
// on different directories are independent and safe to run concurrently.
// Archives are named after the directory they protect (<basename>.par2) and
// live inside it. Verify and repair short-circuit with MissingArchiveCode
// when that archive is absent, without starting par2.
package archive
