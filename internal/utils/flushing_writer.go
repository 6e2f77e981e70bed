package utils

import (
	"io"
	"sync"
)

// Flusher is implemented by buffered writers such as *bufio.Writer.
type Flusher interface {
	Flush() error
}

// FlushingWriter serializes writes and pushes each diagnostic line out of any buffer immediately,
// so lines interleave with the host tool's output in emission order.
type FlushingWriter struct {
	mutex       sync.Mutex
	destination io.Writer
	flusher     Flusher
}

// NewFlushingWriter wraps destination. Wrapping an existing FlushingWriter returns it unchanged.
func NewFlushingWriter(destination io.Writer) io.Writer {
	if destination == nil {
		return nil
	}
	if existingWriter, alreadyWrapped := destination.(*FlushingWriter); alreadyWrapped {
		return existingWriter
	}

	flushingWriter := &FlushingWriter{destination: destination}
	if flusher, supportsFlush := destination.(Flusher); supportsFlush {
		flushingWriter.flusher = flusher
	}
	return flushingWriter
}

// Write implements io.Writer.
func (flushingWriter *FlushingWriter) Write(data []byte) (int, error) {
	if flushingWriter == nil || flushingWriter.destination == nil {
		return 0, nil
	}

	flushingWriter.mutex.Lock()
	defer flushingWriter.mutex.Unlock()

	bytesWritten, writeError := flushingWriter.destination.Write(data)
	if writeError != nil || flushingWriter.flusher == nil {
		return bytesWritten, writeError
	}

	return bytesWritten, flushingWriter.flusher.Flush()
}
