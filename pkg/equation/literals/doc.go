// Package literals provides the node model of an equation tree.
//
// A tree consists of Argument leaves and Operator nodes. Operators own
// an ordered list of child nodes; there are no parent links.
// Algorithms walking a tree are implemented as Visitor, which is
// dispatched by Accept to the operation matching the node kind. Adding a
// new algorithm never requires a change of the node types.
//
// The nodes themselves do not verify the shape of a tree. The declared
// arity of an operator is expected to match its child count, but this
// is the responsibility of the code constructing the tree.
package literals
