// Package planner computes output dimensions for a resize.
//
// The planner is a pure function of the source size and a ScaleConfig
// snapshot. It never looks at pixels and keeps no state between calls, so
// batch callers can plan every image concurrently from one shared config
// value.
//
// Key responsibilities:
//   - Percent scaling with a minimum of one pixel per axis
//   - Exact pixel sizes, deriving a missing axis from the source aspect ratio
//   - Optional snapping of both axes to a tile grid
//   - Aspect-lock helpers that pre-fill the paired exact dimension
package planner
