package lib

import "io"

// ProgressCallback receives upload progress updates.
type ProgressCallback func(consumed, total int64)

// countingReader reports bytes read from the wrapped reader to a
// ProgressCallback. total is the expected size, not enforced.
type countingReader struct {
	r        io.Reader
	total    int64
	consumed int64
	cb       ProgressCallback
}

func newCountingReader(r io.Reader, total int64, cb ProgressCallback) *countingReader {
	return &countingReader{r: r, total: total, cb: cb}
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.consumed += int64(n)
		if c.cb != nil {
			c.cb(c.consumed, c.total)
		}
	}
	return n, err
}
