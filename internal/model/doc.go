// Package model defines the data structures shared by the ransomcheck
// pipeline stages.
//
// This package contains the following main types:
//   - VictimEntry: One parsed row of the recent victims listing
//   - Match: A watch phrase paired with an entry whose title contains it
//   - Run: The accumulated state of a single check
//
// All values are created once by the stage that owns them and are treated as
// read-only afterwards.
package model
