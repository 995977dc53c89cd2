package requestlog

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/valyala/bytebufferpool"
)

// captureBody drains the request body into a pooled buffer and swaps in
// a replay reader so the downstream handler reads the identical bytes
// from the start. The capture buffer goes back to the pool before
// returning; the body text survives as a plain string.
func captureBody(r *http.Request, chunkSize int) (string, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return "", nil
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	chunk := make([]byte, chunkSize)
	for {
		n, err := r.Body.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("capture request body: %w", err)
		}
	}
	r.Body.Close()

	body := buf.String()
	r.Body = io.NopCloser(strings.NewReader(body))
	return body, nil
}
