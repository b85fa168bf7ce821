/*
 * xyz.go, part of intcoord.
 *
 * Copyright 2026 The intcoord Authors
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

// Package xyz reads and writes geometries in the XYZ format: a line with the
// number of atoms, a comment line, and one "Symbol x y z" line per atom.
// Files ending in .zst are transparently zstd-(de)compressed, and files ending
// in .gz, gzip-(de)compressed.
package xyz

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/intcoord"
)

// ErrMalformed is the sentinel for all the parsing errors of this package.
var ErrMalformed = errors.New("malformed XYZ")

// Error is a parsing or I/O error. Line is 1-based, or 0 if the error is not tied to a line.
type Error struct {
	msg      string
	FileName string
	Line     int
	deco     []string
	err      error
}

func (err *Error) Error() string {
	var b strings.Builder
	if err.FileName != "" {
		b.WriteString(err.FileName)
		b.WriteString(": ")
	}
	if err.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", err.Line)
	}
	b.WriteString(err.msg)
	return b.String()
}

// Decorate adds dec to the call stack information of the error.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Unwrap returns ErrMalformed for parsing errors, or the underlying error for I/O errors.
func (err *Error) Unwrap() error {
	if err.err != nil {
		return err.err
	}
	return ErrMalformed
}

// Info contains what an XYZ file has, other than the geometry.
type Info struct {
	Comment  string
	Declared int      //the number of atoms in the first line. It is not used to read the file.
	Warnings []string //problems that did not prevent reading the file
}

// Options for the reader.
type Options struct {
	//If Lenient is true, coordinates that can't be parsed, and an unparsable
	//atom count, are read as 0 and a warning is added, instead of failing.
	Lenient bool
}

// Read reads one geometry in XYZ format from r. All the non-empty lines after
// the comment line are read as atoms, whatever the number in the first line says.
func Read(r io.Reader, opts Options) (*intcoord.Geometry, *Info, error) {
	info := new(Info)
	scanner := bufio.NewScanner(r)
	line := 0
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, nil, &Error{msg: err.Error(), deco: []string{"Read"}, err: err}
		}
		return nil, nil, &Error{msg: "empty file", deco: []string{"Read"}}
	}
	line++
	nstr := strings.TrimSpace(scanner.Text())
	n, err := strconv.Atoi(firstField(nstr))
	if err != nil || n < 0 {
		if !opts.Lenient {
			return nil, nil, &Error{msg: fmt.Sprintf("invalid atom count %q", nstr), Line: line, deco: []string{"Read"}}
		}
		info.Warnings = append(info.Warnings, fmt.Sprintf("line %d: invalid atom count %q, read as 0", line, nstr))
		n = 0
	}
	info.Declared = n
	if scanner.Scan() {
		line++
		info.Comment = strings.TrimSpace(scanner.Text())
	}
	symbols := make([]string, 0, n)
	coords := make([]float64, 0, 3*n)
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 4 {
			return nil, nil, &Error{msg: fmt.Sprintf("expected a symbol and 3 coordinates, got %d fields", len(fields)), Line: line, deco: []string{"Read"}}
		}
		symbols = append(symbols, fields[0])
		for _, f := range fields[1:4] {
			c, err := strconv.ParseFloat(f, 64)
			if err != nil {
				if !opts.Lenient {
					return nil, nil, &Error{msg: fmt.Sprintf("invalid coordinate %q", f), Line: line, deco: []string{"Read"}}
				}
				info.Warnings = append(info.Warnings, fmt.Sprintf("line %d: invalid coordinate %q, read as 0", line, f))
				c = 0
			}
			coords = append(coords, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, &Error{msg: err.Error(), Line: line, deco: []string{"Read"}, err: err}
	}
	if len(symbols) == 0 {
		return nil, nil, &Error{msg: "no atoms found", deco: []string{"Read"}}
	}
	if len(symbols) != n {
		info.Warnings = append(info.Warnings, fmt.Sprintf("%d atoms declared, %d read", n, len(symbols)))
	}
	G, err := intcoord.NewGeometry(symbols, coords)
	if err != nil {
		return nil, nil, &Error{msg: err.Error(), deco: []string{"NewGeometry", "Read"}}
	}
	return G, info, nil
}

func firstField(s string) string {
	f := strings.Fields(s)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// This will cause additional indirections, but the files are small.
// *zstd.Decoder does not implement io.ReadCloser.
type zstdrc struct {
	*zstd.Decoder
}

func (z zstdrc) Close() error {
	z.Decoder.Close()
	return nil
}

func decompressor(name string, r io.Reader) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".zst"):
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdrc{d}, nil
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewReader(r)
	default:
		return io.NopCloser(r), nil
	}
}

func compressor(name string, w io.Writer) (io.WriteCloser, error) {
	switch {
	case strings.HasSuffix(name, ".zst"):
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// ReadFile reads the geometry in the XYZ file name.
func ReadFile(name string, opts Options) (*intcoord.Geometry, *Info, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, &Error{msg: err.Error(), FileName: name, deco: []string{"ReadFile"}, err: err}
	}
	defer f.Close()
	r, err := decompressor(name, bufio.NewReader(f))
	if err != nil {
		return nil, nil, &Error{msg: err.Error(), FileName: name, deco: []string{"ReadFile"}, err: err}
	}
	defer r.Close()
	G, info, err := Read(r, opts)
	if err != nil {
		var xerr *Error
		if errors.As(err, &xerr) {
			xerr.FileName = name
			xerr.Decorate("ReadFile")
		}
		return nil, nil, err
	}
	return G, info, nil
}

// Write writes G in XYZ format to w, with comment in the second line.
// Newlines in comment are replaced by spaces.
func Write(w io.Writer, G *intcoord.Geometry, comment string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", G.Len())
	fmt.Fprintf(bw, "%s\n", strings.ReplaceAll(comment, "\n", " "))
	for i, at := range G.Atoms {
		c := G.Coords.Vec(i)
		fmt.Fprintf(bw, "%-2s %12.6f %12.6f %12.6f\n", at.Symbol, c[0], c[1], c[2])
	}
	if err := bw.Flush(); err != nil {
		return &Error{msg: err.Error(), deco: []string{"Write"}, err: err}
	}
	return nil
}

// WriteFile writes G to the XYZ file name, which is created or truncated.
func WriteFile(name string, G *intcoord.Geometry, comment string) error {
	f, err := os.Create(name)
	if err != nil {
		return &Error{msg: err.Error(), FileName: name, deco: []string{"WriteFile"}, err: err}
	}
	defer f.Close()
	c, err := compressor(name, f)
	if err != nil {
		return &Error{msg: err.Error(), FileName: name, deco: []string{"WriteFile"}, err: err}
	}
	if err := Write(c, G, comment); err != nil {
		return err
	}
	if err := c.Close(); err != nil {
		return &Error{msg: err.Error(), FileName: name, deco: []string{"WriteFile"}, err: err}
	}
	return f.Close()
}
