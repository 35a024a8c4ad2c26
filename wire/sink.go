package wire

import "io"

// ByteSink is the minimal append-only destination an Emitter writes to.
// Any type with a WriteByte method satisfies it, including *bytes.Buffer
// and *Buffer below.
type ByteSink interface {
	WriteByte(b byte) error
}

// bulkWriter is the capability Emitter looks for on a ByteSink to avoid
// writing fixed-width and length-delimited payloads one byte at a time.
// *bytes.Buffer and *Buffer both satisfy it.
type bulkWriter interface {
	Write(p []byte) (int, error)
}

// writeBulk writes p to sink in one call when sink exposes a Write
// method, falling back to WriteByte in a loop otherwise. This is the
// same "accept the narrow interface, exploit the wide one when present"
// idiom io.Copy uses for WriterTo/ReaderFrom.
func writeBulk(sink ByteSink, p []byte) error {
	if bw, ok := sink.(bulkWriter); ok {
		n, err := bw.Write(p)
		if err != nil {
			return err
		}
		if n != len(p) {
			return ErrShortWrite
		}
		return nil
	}
	for _, b := range p {
		if err := sink.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}

// Buffer is a ready-made ByteSink backed by a growable byte slice. It is
// the injectable counterpart of the private buffer a one-shot encoder
// keeps internally: most callers can pass a *Buffer to NewEmitter and
// never write their own sink.
type Buffer struct {
	buf []byte
}

// NewBuffer returns an empty Buffer ready to receive emitted bytes.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// WriteByte appends b to the buffer. It never returns an error.
func (b *Buffer) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// Write appends p to the buffer and satisfies io.Writer, which lets
// Emitter take the bulk-copy fast path for this sink.
func (b *Buffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// Bytes returns the bytes written so far. The returned slice aliases the
// Buffer's internal storage and is invalidated by the next write.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Reset discards all written bytes without releasing the backing array.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.buf)
}

var _ io.Writer = (*Buffer)(nil)
