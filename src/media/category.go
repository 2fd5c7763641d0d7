package media

import (
	"fmt"
	"slices"
)

// Category is one of the fixed media kinds. Each category is a
// subdirectory directly under the media root.
type Category string

const (
	Image Category = "Image"
	Audio Category = "Audio"
	Video Category = "Video"
)

// Categories lists every valid category in display order.
var Categories = []Category{Image, Audio, Video}

var extensions = map[Category][]string{
	Image: {"png", "jpg", "jpeg", "gif", "webp", "bmp", "svg"},
	Audio: {"mp3", "wav", "ogg", "m4a", "aac", "flac"},
	Video: {"mp4", "webm", "mkv", "avi", "mov"},
}

// ParseCategory returns the category named s. Names are case-sensitive.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate reports whether c belongs to the closed set of categories.
func (c Category) Validate() error {
	if !slices.Contains(Categories, c) {
		return fmt.Errorf("%w: %q (must be Image, Audio or Video)", ErrInvalidCategory, string(c))
	}
	return nil
}

// Extensions returns the file extensions offered by file pickers for c.
// They are advisory only; imports never check the format of a file.
func (c Category) Extensions() []string {
	return slices.Clone(extensions[c])
}

func (c Category) String() string {
	return string(c)
}
