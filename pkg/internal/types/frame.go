package types

// Frame is a single multi-dimensional sample emitted by a streamer or stored
// in a trace. Seq carries the zero-based position in the sample sequence and T
// the instant the curve was evaluated at, so a frame is self-describing even
// when it is read back out of order.
type Frame struct {
	Seq    int       `json:"seq"`
	T      float64   `json:"t"`
	Values []float64 `json:"values"`
}
