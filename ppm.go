package pixbuf

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
)

// EncodePPM writes the surface as a binary PPM (P6): the ASCII header
// "P6\n<width> <height>\n255\n" followed by width*height RGB triplets in
// row-major order. Alpha is dropped.
func (s *Surface) EncodePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", s.width, s.height); err != nil {
		return err
	}

	row := make([]byte, s.width*3)
	for y := 0; y < s.height; y++ {
		for x, c := range s.pix[y*s.width : (y+1)*s.width] {
			row[x*3+0] = c.R
			row[x*3+1] = c.G
			row[x*3+2] = c.B
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SavePPM writes the surface to path as a binary PPM.
//
// The returned error wraps ErrFileIO when the file cannot be created or
// fully written. No recovery is attempted: a failure mid-write leaves a
// partial file and the whole export must be treated as failed.
func (s *Surface) SavePPM(path string) error {
	return SaveFile(path, "ppm", s.EncodePPM)
}

// SavePPM writes s to path as a binary PPM. See Surface.SavePPM.
func SavePPM(s *Surface, path string) error {
	return s.SavePPM(path)
}

// EncodePNG encodes the surface as PNG to the provided writer.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.ToImage())
}

// SavePNG saves the surface to a PNG file. Errors wrap ErrFileIO.
func (s *Surface) SavePNG(path string) error {
	return SaveFile(path, "png", s.EncodePNG)
}

// SaveFile creates path and fills it with encode. Errors from creating,
// writing or closing the file wrap ErrFileIO and are logged at warn level
// with the given format name.
func SaveFile(path, format string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		Logger().Warn("pixbuf: export failed", "format", format, "path", path, "err", err)
		return fmt.Errorf("%w: %w", ErrFileIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrFileIO, cerr)
		}
		if err != nil {
			Logger().Warn("pixbuf: export failed", "format", format, "path", path, "err", err)
		}
	}()

	if err := encode(f); err != nil {
		if errors.Is(err, ErrFileIO) {
			return err
		}
		return fmt.Errorf("%w: write %s: %w", ErrFileIO, path, err)
	}
	return nil
}
