// Package dfs implements the depth-first traversals fuelroute needs on a
// core.Graph road network.
//
// What:
//
//   - DFS: explores as far as possible along each road before backtracking,
//     recording discovery depth and parent links. Reachable builds on it to
//     answer "can the destination be reached at all" before paying for
//     enumeration, and returns the discovery chain for logging.
//   - SimplePaths / AllSimplePaths: enumerate every simple directed path
//     (no repeated city) between an origin and a destination. The partial
//     path is an explicit stack plus on-path set, pushed on descend and
//     popped on backtrack; each emitted path is an independent copy.
//
// Options:
//
//   - WithContext(ctx)        cancellation, checked once per city.
//   - WithMaxDepth(limit)     maximum number of roads from the start.
//   - WithMaxPaths(n)         stop SimplePaths after n paths.
//
// Complexity:
//
//   - DFS:          Time O(V+E), Memory O(V)
//   - SimplePaths:  Time exponential in the worst case, Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  DFS start city not in graph
//   - ErrNilVisitor           SimplePaths called without a visitor
//   - ErrStopEnumeration      returned by a visitor to stop early (not surfaced)
//   - context.Canceled        traversal canceled via context
package dfs
