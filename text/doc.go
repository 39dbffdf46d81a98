// Package text holds the text helpers shared by the rewriting stages.
//
// # Normalization
//
// [Normalize] turns the raw text extracted from a block into the form used
// for marker comparison. Word splits a visible line across runs freely and
// sprinkles directional marks into Hebrew and Arabic text, so markers are
// always compared after normalization:
//
//	text.Normalize("  תנועה   כוללת ") // "תנועה כוללת"
//
// # Text Direction
//
// The package supports bidirectional text with the [Direction] type:
//
//   - LTR - left-to-right (Latin, CJK, etc.)
//   - RTL - right-to-left (Arabic, Hebrew, etc.)
//   - Neutral - direction-neutral characters (numbers, punctuation)
//
// The [DetectDirection] function analyzes text to determine its direction;
// generated runs holding right-to-left text are flagged accordingly.
package text
