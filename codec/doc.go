// Package codec reads and writes the graph+cover interchange format the
// external producer emits:
//
//	line 1:           n m k
//	lines 2..m+1:     graph edges, "u v" each
//	lines m+2..m+1+k: cover edges, "u v" each
//
// All values are ASCII integers separated by whitespace. The decoder is a
// structured reader: it validates the declared counts against the actual
// content before trusting any index, so truncated or padded files surface
// as parse errors instead of out-of-bounds access. Cover edges are
// normalized to (min,max) and deduplicated on load; duplicate cover lines
// collapse, so the decoded cover may be smaller than the declared k.
// Downstream consumers must tolerate that, not treat it as corruption.
//
// Malformed content yields a *ParseError carrying the file name and line
// number, wrapping ErrMalformed. A missing or unreadable file wraps
// ErrUnreadable. Decoding never panics.
package codec
