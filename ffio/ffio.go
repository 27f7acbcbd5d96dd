/*
 * ffio.go, part of ffconv.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package ffio opens and reads the parameter files, which can be plain text or
// compressed with gzip or zstd.
package ffio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression is the compression format detected in an input.
type Compression string

const (
	None Compression = "none"
	Gzip Compression = "gzip"
	Zstd Compression = "zstd"
)

var gzipMagic = []byte{0x1f, 0x8b}
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// zstd.Decoder has a Close method that returns nothing, so it
// doesn't implement io.ReadCloser.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// fileCloser closes the decompressor and then the file.
type fileCloser struct {
	io.ReadCloser
	f *os.File
}

func (f fileCloser) Close() error {
	err := f.ReadCloser.Close()
	if err2 := f.f.Close(); err == nil {
		err = err2
	}
	return err
}

// NewReader returns a reader for the decompressed contents of r. The compression
// is detected from the first bytes of r. Closing the returned reader doesn't close r.
func NewReader(r io.Reader) (io.ReadCloser, Compression, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, None, fmt.Errorf("reading input: %w", err)
	}
	switch {
	case bytes.HasPrefix(magic, zstdMagic):
		d, err := zstd.NewReader(br)
		if err != nil {
			return nil, Zstd, fmt.Errorf("opening zstd stream: %w", err)
		}
		return zstdCloser{d}, Zstd, nil
	case bytes.HasPrefix(magic, gzipMagic):
		g, err := gzip.NewReader(br)
		if err != nil {
			return nil, Gzip, fmt.Errorf("opening gzip stream: %w", err)
		}
		return g, Gzip, nil
	}
	return io.NopCloser(br), None, nil
}

// Open opens the file name for reading, see NewReader.
// Closing the returned reader closes the file.
func Open(name string) (io.ReadCloser, Compression, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, None, err
	}
	r, c, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, c, fmt.Errorf("%s: %w", name, err)
	}
	return fileCloser{ReadCloser: r, f: f}, c, nil
}

// LineReader reads an input one line at a time, keeping track of the line number.
type LineReader struct {
	r *bufio.Reader
	n int
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Next returns the next line, without the line terminator. At the end of the
// input it returns io.EOF. A last line without terminator is returned normally.
func (L *LineReader) Next() (string, error) {
	s, err := L.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || s == "" {
			return "", err
		}
	}
	L.n++
	return strings.TrimRight(s, "\r\n"), nil
}

// Number returns the number (1-based) of the last line returned by Next.
func (L *LineReader) Number() int { return L.n }
