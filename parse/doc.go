// Package parse assembles the tokens of a formula into a syntax tree.
//
// A leading number applies to the whole formula and becomes the root
// [MoleType] node. Any other number multiplies the node immediately
// preceding it in its group.
package parse
