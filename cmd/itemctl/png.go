package main

import (
	"image"
	"image/png"
	"os"

	"github.com/KirkDiggler/ducttape-items/internal/errors"
)

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "failed to encode %s", path)
	}
	return f.Close()
}
