// Package visitors provides the algorithms working on equation trees
// built from package literals.
//
//   - ArgFinder collects the Argument leaves of a tree.
//   - Printer renders a tree to a single line string.
//   - Validator checks the shape of a tree without evaluating it.
//   - Evaluator calculates the value of a tree.
//
// All visitors accumulate their result while walking a tree. A visitor
// instance must not be used concurrently, and it must be reset before
// it is reused for another tree. The convenience methods Find, Render,
// Validate and Evaluate do this implicitly, a plain literals.Accept
// does not.
package visitors
