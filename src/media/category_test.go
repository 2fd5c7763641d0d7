package media

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, name := range []string{"Image", "Audio", "Video"} {
		c, err := ParseCategory(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.String())
	}

	for _, name := range []string{"Document", "image", "", "Image/"} {
		_, err := ParseCategory(name)
		assert.ErrorIs(t, err, ErrInvalidCategory, name)
	}
}

func TestCategoryExtensions(t *testing.T) {
	assert.Contains(t, Image.Extensions(), "png")
	assert.Contains(t, Audio.Extensions(), "mp3")
	assert.Contains(t, Video.Extensions(), "mp4")
	assert.Empty(t, Category("Document").Extensions())

	exts := Image.Extensions()
	exts[0] = "changed"
	assert.Equal(t, "png", Image.Extensions()[0])
}

func TestErrorKind(t *testing.T) {
	wrapped := fmt.Errorf("%w: failed to copy file: %w", ErrStorageIO, errors.New("disk full"))
	assert.Equal(t, "StorageIOError", ErrorKind(wrapped))
	assert.Equal(t, "FileNotFoundError", ErrorKind(fmt.Errorf("lookup: %w", ErrFileNotFound)))
	assert.Equal(t, "EnvironmentError", ErrorKind(ErrEnvironment))
	assert.Equal(t, "UnknownError", ErrorKind(errors.New("boom")))
}
