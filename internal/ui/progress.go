package ui

import (
	"io"

	"github.com/cheggaaa/pb/v3"

	"github.com/fr4nk3nst1ner/jobboard/internal/board"
)

// progressSource shows a progress bar while the wrapped source is read
type progressSource struct {
	board.FileSource
	size int64
	out  io.Writer
}

// WithProgress wraps src with a progress bar written to out. Sources that do not
// report a size, or nil sources, are returned unchanged.
func WithProgress(src board.FileSource, out io.Writer) board.FileSource {
	if src == nil {
		return nil
	}
	sizer, ok := src.(board.Sizer)
	if !ok || sizer.Size() <= 0 {
		return src
	}
	return progressSource{FileSource: src, size: sizer.Size(), out: out}
}

func (p progressSource) Open() (io.ReadCloser, error) {
	rc, err := p.FileSource.Open()
	if err != nil {
		return nil, err
	}
	bar := pb.New64(p.size).
		SetTemplate(pb.Full).
		Set(pb.Bytes, true).
		SetWriter(p.out).
		Start()
	return bar.NewProxyReader(rc), nil
}
