package raster

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	_ "golang.org/x/image/tiff" // TIFF decoder, including 16-bit gray
)

// RawOptions describes headerless sample data.
type RawOptions struct {
	Width     int
	Height    int
	ByteOrder binary.ByteOrder
}

// ParseByteOrder maps "little"/"big" (or "le"/"be") to a byte order.
func ParseByteOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(s) {
	case "", "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("unknown byte order %q", s)
}

// DecodeRaw reads Width*Height uint16 samples.
func DecodeRaw(data []byte, opts RawOptions) (*Image, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, opts.Width, opts.Height)
	}
	want := opts.Width * opts.Height * 2
	if len(data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrSize, len(data), want)
	}

	order := opts.ByteOrder
	if order == nil {
		order = binary.LittleEndian
	}

	m := New(opts.Width, opts.Height)
	for i := range m.Pix {
		m.Pix[i] = order.Uint16(data[i*2:])
	}
	return m, nil
}

// Decode picks a decoder from the source name's extension.
func Decode(name string, data []byte, opts RawOptions) (*Image, error) {
	ext := strings.ToLower(filepath.Ext(stripQuery(name)))
	switch ext {
	case ".raw", ".bin", "":
		return DecodeRaw(data, opts)
	case ".tif", ".tiff", ".png":
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}
		return FromImage(img), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrFormat, ext)
}

// Load reads an image from a local path or an http(s) URL.
func Load(ctx context.Context, source string, opts RawOptions) (*Image, error) {
	var (
		data []byte
		err  error
	)
	if isURL(source) {
		data, err = fetch(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	m, err := Decode(source, data, opts)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"source": source,
		"width":  m.Width,
		"height": m.Height,
	}).Info("image loaded")
	return m, nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	rsp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer rsp.Body.Close()

	if rsp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("GET %s: %s", url, rsp.Status)
	}
	return io.ReadAll(rsp.Body)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func stripQuery(s string) string {
	if i := strings.IndexAny(s, "?#"); i >= 0 && isURL(s) {
		return s[:i]
	}
	return s
}
