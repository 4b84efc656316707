package recorder

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// NDJSONFormat encodes one frame per line as a JSON object. The output is
// human-readable and interoperates with anything that speaks newline-delimited
// JSON; float64 values survive a round trip exactly under encoding/json's
// shortest-representation rules.
type NDJSONFormat struct{}

func NewNDJSONFormat() types.TraceFormat {
	return NDJSONFormat{}
}

func (NDJSONFormat) Name() string { return "ndjson" }

func (NDJSONFormat) NewTraceWriter() types.TraceWriter { return &ndjsonTraceWriter{} }

func (NDJSONFormat) NewTraceReader() types.TraceReader { return &ndjsonTraceReader{} }

type ndjsonTraceWriter struct {
	bw  *bufio.Writer
	enc *json.Encoder
}

func (w *ndjsonTraceWriter) Begin(dst io.Writer, opts types.TraceWriterOptions) error {
	w.bw = bufio.NewWriter(dst)
	w.enc = json.NewEncoder(w.bw)
	return nil
}

func (w *ndjsonTraceWriter) Write(frame types.Frame) error {
	if w.enc == nil {
		return ErrTraceNotBegun
	}
	// json.Encoder terminates every value with a newline, which is exactly
	// the NDJSON record separator.
	return w.enc.Encode(frame)
}

func (w *ndjsonTraceWriter) Flush() error {
	if w.bw == nil {
		return ErrTraceNotBegun
	}
	return w.bw.Flush()
}

func (w *ndjsonTraceWriter) Close() error {
	return w.Flush()
}

func (w *ndjsonTraceWriter) ContentType() string { return "application/x-ndjson" }

func (w *ndjsonTraceWriter) Ext() string { return ".ndjson" }

type ndjsonTraceReader struct {
	dec *json.Decoder
	cur types.Frame
	err error
}

func (r *ndjsonTraceReader) Begin(src io.Reader, opts types.TraceReaderOptions) error {
	r.dec = json.NewDecoder(src)
	return nil
}

func (r *ndjsonTraceReader) Next() bool {
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

func (r *ndjsonTraceReader) Record() types.Frame { return r.cur }

func (r *ndjsonTraceReader) Err() error { return r.err }

func (r *ndjsonTraceReader) Close() error { return nil }
