// Package hold detects cursor dwell: the cursor staying within a radius of
// an anchor point for at least a trigger duration.
//
// The detector is sampled once per tick. The first sample of an entry only
// anchors it. A sample outside the radius moves the anchor and restarts the
// timer. A sample inside the radius after the trigger duration fires the
// handler with the anchor position. The anchor is kept after firing, so a
// cursor held still fires on every tick until it moves.
package hold
