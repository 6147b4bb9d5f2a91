// Package zstarchive streams newline-delimited records out of zstandard
// compressed dump archives
package zstarchive

import (
	"bufio"
	"io"
	"os"
	"strings"

	perr "dumpsift/internal/platform/errors"
	"dumpsift/internal/platform/logger"

	"github.com/klauspost/compress/zstd"
)

const (
	// DefaultWindowLog covers dump archives compressed with long-distance
	// matching; smaller windows decode fine under a larger cap
	DefaultWindowLog = 31

	maxScanTokenSize = 32 * 1024 * 1024
	sampleRawMax     = 2048 // max bytes of a raw line to log for the sample
)

// Options tunes the decoder
type Options struct {
	// WindowLog caps the decompression window at 1<<WindowLog bytes.
	// Archives built with a larger window fail with an explicit decode
	// error instead of truncating silently
	WindowLog int
}

func (o Options) windowLog() int {
	if o.WindowLog <= 0 {
		return DefaultWindowLog
	}
	return o.WindowLog
}

// Reader streams trimmed text lines from a zstd stream
type Reader struct {
	rc      io.ReadCloser
	dec     *zstd.Decoder
	sc      *bufio.Scanner
	err     error
	lines   int
	bytes   int64
	sampled bool // logs exactly one sample raw line per archive
}

// OpenFile opens path and returns a line reader over its decompressed content
func OpenFile(path string, opt Options) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeArchive, "open archive %s", path)
	}
	rd, err := NewReader(f, opt)
	if err != nil {
		if cerr := f.Close(); cerr != nil {
			return nil, cerr
		}
		return nil, err
	}
	return rd, nil
}

// NewReader wraps rc with a zstd decoder and line scanner
func NewReader(rc io.ReadCloser, opt Options) (*Reader, error) {
	dec, err := zstd.NewReader(rc,
		zstd.WithDecoderMaxWindow(1<<uint(opt.windowLog())),
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDecode, "zstd decoder init")
	}
	sc := bufio.NewScanner(dec)
	buf := make([]byte, 512*1024)
	sc.Buffer(buf, maxScanTokenSize)
	return &Reader{rc: rc, dec: dec, sc: sc}, nil
}

// Next returns the next line with trailing whitespace stripped.
// Blank lines are returned as empty strings so callers can account for
// them; io.EOF signals a clean end of the archive
func (rd *Reader) Next() (string, error) {
	if rd.err != nil {
		return "", rd.err
	}
	if !rd.sc.Scan() {
		if err := rd.sc.Err(); err != nil {
			rd.err = perr.Wrap(err, perr.ErrorCodeDecode, "zstd stream read")
			return "", rd.err
		}
		rd.err = io.EOF
		return "", io.EOF
	}
	raw := rd.sc.Bytes()
	rd.lines++
	rd.bytes += int64(len(raw) + 1) // include newline

	// Log a single raw-line sample (first non-empty line in this archive)
	if !rd.sampled && len(raw) > 0 {
		rd.sampled = true
		l := logger.Named("zstarchive")
		l.Debug().
			Int("line_bytes", len(raw)).
			Str("sample_raw", truncateUTF8(raw, sampleRawMax)).
			Msg("zstarchive: sample raw line")
	}

	return strings.TrimRight(string(raw), " \t\r"), nil
}

// Close releases the decoder and the underlying reader
func (rd *Reader) Close() error {
	if rd.dec != nil {
		rd.dec.Close()
	}
	if rd.rc != nil {
		return rd.rc.Close()
	}
	return nil
}

// Stats returns the number of lines read and total uncompressed bytes so far
func (rd *Reader) Stats() (lines int, bytes int64) {
	return rd.lines, rd.bytes
}

// truncateUTF8 returns a string made from b, truncated to at most max bytes,
// backing up to a UTF-8 boundary if needed, and appending an ellipsis if truncated
func truncateUTF8(b []byte, max int) string {
	if max <= 0 || len(b) <= max {
		return string(b)
	}
	i := max
	// back up to the start of a rune (0b10xxxxxx indicates continuation byte)
	for i > 0 && (b[i]&0xC0) == 0x80 {
		i--
	}
	if i <= 0 {
		i = max
	}
	return string(b[:i]) + "..."
}
