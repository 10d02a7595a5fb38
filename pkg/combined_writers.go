package pkg

import "io"

type CombinedWriter struct {
	writers []io.Writer
}

// NewCombinedWriter creates a writer that duplicates its writes to all
// provided writers. Used to write logs to stdout and log file at once.
func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		writers: writers,
	}
}

func (w *CombinedWriter) Write(p []byte) (n int, err error) {
	for _, writer := range w.writers {
		n, err = writer.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}
