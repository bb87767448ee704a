package emwave

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// Output formats, chosen by file extension.
const (
	FormatGIF     = ".gif"
	FormatPNG     = ".png"
	FormatRaw     = ".raw"
	FormatMsgPack = ".msgpack"
)

// OutputFormat returns the export format for path or ErrUnsupportedOutput.
func OutputFormat(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case FormatGIF, FormatPNG, FormatRaw, FormatMsgPack:
		return ext, nil
	}
	return "", fmt.Errorf("%w: %q (use .gif, .png, .raw or .msgpack)", ErrUnsupportedOutput, path)
}

// NeedsImages reports whether exporting to path requires rendered frames.
func NeedsImages(path string) bool {
	f, err := OutputFormat(path)
	return err == nil && (f == FormatGIF || f == FormatPNG)
}

// SaveAnimation exports the animation in the format implied by path. images may be
// nil for the field-data formats.
func SaveAnimation(path string, a *Animation, frames []*Frame, images []*image.Paletted) error {
	format, err := OutputFormat(path)
	if err != nil {
		return err
	}
	if NeedsImages(path) && len(images) != len(frames) {
		return fmt.Errorf("%s export needs %d rendered frames, got %d", format, len(frames), len(images))
	}
	switch format {
	case FormatGIF:
		err = SaveAnimatedGIF(images, path, a.FPS)
	case FormatPNG:
		err = SavePNGSequence(images, path)
	case FormatRaw:
		err = SaveRawFrames(path, a, frames)
	case FormatMsgPack:
		err = SaveMsgPackFrames(path, a, frames)
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	DebugLog("Saved %s animation: %s", format, path)
	return nil
}
