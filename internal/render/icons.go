package render

import (
	"bytes"
	"embed"
	"image"
	"image/png"

	apperrors "conway-life/internal/errors"
	"conway-life/internal/session"
)

//go:embed icons/*.png
var iconFS embed.FS

var iconFiles = map[session.Icon]string{
	session.IconPlay:  "icons/play.png",
	session.IconPause: "icons/pause.png",
}

// LoadIcons decodes every embedded control icon. Any failure is returned as a
// RESOURCE_LOAD error and the caller treats it as fatal.
func LoadIcons() (map[session.Icon]image.Image, error) {
	icons := make(map[session.Icon]image.Image, len(iconFiles))
	for name, file := range iconFiles {
		img, err := decodeIcon(file)
		if err != nil {
			return nil, err
		}
		icons[name] = img
	}
	return icons, nil
}

func decodeIcon(file string) (image.Image, error) {
	raw, err := iconFS.ReadFile(file)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeResourceLoad, "read icon "+file, err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeResourceLoad, "decode icon "+file, err)
	}
	return img, nil
}
