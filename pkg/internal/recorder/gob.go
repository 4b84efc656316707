package recorder

import (
	"bufio"
	"encoding/gob"
	"io"

	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// GobFormat encodes frames with encoding/gob. The stream is compact, Go-only,
// and reproduces float64 payloads bit-for-bit, which makes it the format of
// choice when a replayed trace must be indistinguishable from the live run.
type GobFormat struct{}

func NewGobFormat() types.TraceFormat {
	return GobFormat{}
}

func (GobFormat) Name() string { return "gob" }

func (GobFormat) NewTraceWriter() types.TraceWriter { return &gobTraceWriter{} }

func (GobFormat) NewTraceReader() types.TraceReader { return &gobTraceReader{} }

type gobTraceWriter struct {
	bw  *bufio.Writer
	enc *gob.Encoder
}

func (w *gobTraceWriter) Begin(dst io.Writer, opts types.TraceWriterOptions) error {
	w.bw = bufio.NewWriter(dst)
	w.enc = gob.NewEncoder(w.bw)
	return nil
}

func (w *gobTraceWriter) Write(frame types.Frame) error {
	if w.enc == nil {
		return ErrTraceNotBegun
	}
	return w.enc.Encode(frame)
}

func (w *gobTraceWriter) Flush() error {
	if w.bw == nil {
		return ErrTraceNotBegun
	}
	return w.bw.Flush()
}

func (w *gobTraceWriter) Close() error {
	return w.Flush()
}

func (w *gobTraceWriter) ContentType() string { return "application/octet-stream" }

func (w *gobTraceWriter) Ext() string { return ".gob" }

type gobTraceReader struct {
	dec *gob.Decoder
	cur types.Frame
	err error
}

func (r *gobTraceReader) Begin(src io.Reader, opts types.TraceReaderOptions) error {
	r.dec = gob.NewDecoder(src)
	return nil
}

func (r *gobTraceReader) Next() bool {
	if r.dec == nil {
		r.err = ErrTraceNotBegun
		return false
	}
	if r.err != nil {
		return false
	}
	var frame types.Frame
	if err := r.dec.Decode(&frame); err != nil {
		if err != io.EOF {
			r.err = err
		}
		return false
	}
	r.cur = frame
	return true
}

func (r *gobTraceReader) Record() types.Frame { return r.cur }

func (r *gobTraceReader) Err() error { return r.err }

func (r *gobTraceReader) Close() error { return nil }
