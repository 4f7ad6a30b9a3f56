// Package solver searches for expressions over a number set that reach
// a target value, ranked by complexity. It never imports cli, output,
// or pipeline; keep it domain-only.
//
// The enumeration is deliberately incomplete: a fixed set of expression
// shapes per operand count, not a full binary-tree enumerator. Larger
// bracketings are only reachable through the unary and summation
// extensions, which recurse into the whole search on a modified number
// set. External outputs must not depend on the internal shape here —
// use pkg/api in the root module for stable wire types.
package solver
