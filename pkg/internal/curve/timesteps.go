package curve

// TimeSteps is a stateful single-pass cursor over a Meander, yielding one
// evaluation per call at times 0, dt, 2·dt, and so on. The sequence is
// conceptually infinite: Next never signals completion. Restarting means
// making a new cursor.
//
// The nth element is computed at exactly float64(n) * dt, by multiplication
// rather than accumulated addition, so it is bit-identical to calling
// Evaluate with that product directly no matter how many steps preceded it.
//
// A cursor is not safe for concurrent use. dt may be zero or negative; the
// cursor then revisits or walks backward through curve time, which is
// well-defined since evaluation accepts any finite t.
type TimeSteps struct {
	meander Meander
	dt      float64
	next    uint64
}

// Step reports the index of the sample the next call to Next will produce.
func (ts *TimeSteps) Step() uint64 {
	return ts.next
}

// TimeStep returns the fixed time increment between successive samples.
func (ts *TimeSteps) TimeStep() float64 {
	return ts.dt
}

// Dims reports the number of values each call to Next yields.
func (ts *TimeSteps) Dims() int {
	return ts.meander.Dims()
}

// Next evaluates the curve at the cursor's current time and advances the
// cursor one step. The returned slice is freshly allocated, one value in
// [0, 1] per dimension.
func (ts *TimeSteps) Next() []float64 {
	t := float64(ts.next) * ts.dt
	ts.next++
	return ts.meander.Evaluate(t)
}
