package io

import (
	"bufio"
	"io"
)

// FlushingWriter wraps an io.Writer and flushes after each write so that
// streamed tool output (formatter rewrites, checker violations) appears in
// real time instead of arriving in one burst when the child process exits.
type FlushingWriter struct {
	w       io.Writer
	flusher interface{ Flush() error }
}

// NewFlushingWriter creates a FlushingWriter. A writer that already supports
// flushing is used directly; anything else is wrapped in a bufio.Writer.
func NewFlushingWriter(w io.Writer) *FlushingWriter {
	fw := &FlushingWriter{w: w}

	if f, ok := w.(interface{ Flush() error }); ok {
		fw.flusher = f
	} else {
		bw := bufio.NewWriter(w)
		fw.w = bw
		fw.flusher = bw
	}

	return fw
}

// Write writes data and immediately flushes it through.
func (fw *FlushingWriter) Write(p []byte) (n int, err error) {
	n, err = fw.w.Write(p)
	if err != nil {
		return n, err
	}

	if fw.flusher != nil {
		if flushErr := fw.flusher.Flush(); flushErr != nil {
			return n, flushErr
		}
	}

	return n, nil
}

// Flush explicitly flushes any buffered data.
func (fw *FlushingWriter) Flush() error {
	if fw.flusher != nil {
		return fw.flusher.Flush()
	}
	return nil
}
