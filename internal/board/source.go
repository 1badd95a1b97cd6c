package board

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
)

// FileSource is a file the user picked. A nil FileSource means no file was chosen.
type FileSource interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// Sizer is implemented by sources that know their length up front
type Sizer interface {
	Size() int64
}

type osFile struct {
	path string
}

// OSFile reads a file from disk
func OSFile(path string) FileSource {
	return osFile{path: path}
}

func (f osFile) Name() string { return f.path }

func (f osFile) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}

func (f osFile) Size() int64 {
	info, err := os.Stat(f.path)
	if err != nil {
		return 0
	}
	return info.Size()
}

type bytesSource struct {
	name string
	data []byte
}

// BytesSource serves an in-memory upload
func BytesSource(name string, data []byte) FileSource {
	return bytesSource{name: name, data: data}
}

func (b bytesSource) Name() string { return b.name }

func (b bytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b.data)), nil
}

func (b bytesSource) Size() int64 { return int64(len(b.data)) }

// ctxReader stops a read once the context is done
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// readSource reads the whole source, failing when it is larger than maxBytes (if positive)
func readSource(ctx context.Context, src FileSource, maxBytes int64) ([]byte, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src.Name(), err)
	}
	defer rc.Close()

	var r io.Reader = ctxReader{ctx: ctx, r: rc}
	if maxBytes > 0 {
		r = io.LimitReader(r, maxBytes+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src.Name(), err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("read %s: file exceeds %d bytes", src.Name(), maxBytes)
	}
	return data, nil
}
