// Package libdiff computes structural differences between tag trees.
//
// A diff is a flat list of Change values, each naming the path of the
// changed tag. Compound entries are aligned by key. List and array
// elements are aligned by a summary of each element (its kind, plus its
// value for leaves) using the diffmatchpatch sequence diff, so inserting
// one element into a long list yields one Insert rather than a Replace
// per shifted element.
package libdiff
