package remotecmd

import (
	"io"
	"strings"
	"sync"

	"k8s.io/klog/v2"
)

// Output holds what a remote command wrote on its standard streams.
// Chunks are kept in the order they were read from the exec stream.
type Output struct {
	StdoutChunks []string
	StderrChunks []string
}

// Stdout returns the concatenated standard output of the command
func (o *Output) Stdout() string {
	return strings.Join(o.StdoutChunks, "")
}

// Stderr returns the concatenated standard error of the command
func (o *Output) Stderr() string {
	return strings.Join(o.StderrChunks, "")
}

// StdoutLines returns the standard output split in lines, without line terminators
func (o *Output) StdoutLines() []string {
	return splitLines(o.Stdout())
}

// StderrLines returns the standard error split in lines, without line terminators
func (o *Output) StderrLines() []string {
	return splitLines(o.Stderr())
}

// splitLines splits on "\n", "\r\n" and "\r". A trailing terminator does not produce an empty last line.
func splitLines(s string) []string {
	lines := []string{}
	for len(s) > 0 {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i])
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			i++
		}
		s = s[i+1:]
	}
	return lines
}

// chunkWriter records every buffer written to it as one chunk.
// The exec stream writes stdout and stderr from separate goroutines, each to its own writer.
type chunkWriter struct {
	mu      sync.Mutex
	chunks  []string
	stream  string
	console io.Writer
}

var _ io.Writer = (*chunkWriter)(nil)

func (w *chunkWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.chunks = append(w.chunks, string(p))
	klog.V(4).Infof("%s: %q", w.stream, p)
	if w.console != nil {
		if _, err := w.console.Write(p); err != nil {
			klog.V(2).Infof("unable to echo command output: %v", err)
		}
	}
	return len(p), nil
}

func (w *chunkWriter) Chunks() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.chunks...)
}
