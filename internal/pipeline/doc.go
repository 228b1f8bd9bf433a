// Package pipeline runs the stages of a check in sequence.
//
// A check is three steps: load the watch phrases, fetch the listing, and
// match one against the other. Each step reads and extends a shared
// model.Run. The pipeline stops at the first failing step, so a missing
// phrase file or a failed fetch ends the run without partial results.
package pipeline
