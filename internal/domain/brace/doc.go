// Package brace validates and repairs brace-delimited text such as
// stylesheet sources.
//
// Every function here counts '{' and '}' as raw characters. Braces inside
// string literals or comments are counted like structural ones, so a quoted
// "{" shifts the depth of every following line. Lines judged corrupt by
// this package are judged on that basis and callers must not assume any
// awareness of the markup language.
//
// Lines end at "\n", "\r\n" or a lone "\r". Repaired output always uses
// "\n".
//
// All operations are pure: they take a text value and return a new one.
// Reading and writing files is left to the caller.
package brace
