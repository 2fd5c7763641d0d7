package appdir

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/contre95/mediastore/src/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(goos string, vars map[string]string, home string) Env {
	return Env{
		GOOS:   goos,
		Getenv: func(k string) string { return vars[k] },
		HomeDir: func() (string, error) {
			if home == "" {
				return "", errors.New("$HOME is not defined")
			}
			return home, nil
		},
	}
}

func TestDataDir(t *testing.T) {
	tests := []struct {
		name    string
		env     Env
		want    string
		wantErr bool
	}{
		{
			name: "linux xdg",
			env:  fakeEnv("linux", map[string]string{"XDG_DATA_HOME": "/xdg"}, "/home/u"),
			want: filepath.Join("/xdg", "com.example.app"),
		},
		{
			name: "linux relative xdg is ignored",
			env:  fakeEnv("linux", map[string]string{"XDG_DATA_HOME": "rel"}, "/home/u"),
			want: filepath.Join("/home/u", ".local", "share", "com.example.app"),
		},
		{
			name: "linux home",
			env:  fakeEnv("linux", nil, "/home/u"),
			want: filepath.Join("/home/u", ".local", "share", "com.example.app"),
		},
		{
			name: "darwin",
			env:  fakeEnv("darwin", nil, "/Users/u"),
			want: filepath.Join("/Users/u", "Library", "Application Support", "com.example.app"),
		},
		{
			name: "windows",
			env:  fakeEnv("windows", map[string]string{"APPDATA": "/appdata"}, ""),
			want: filepath.Join("/appdata", "com.example.app"),
		},
		{
			name:    "windows without APPDATA",
			env:     fakeEnv("windows", nil, "/home/u"),
			wantErr: true,
		},
		{
			name:    "no home",
			env:     fakeEnv("linux", nil, ""),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DataDir(tt.env, "com.example.app", "")
			if tt.wantErr {
				require.ErrorIs(t, err, media.ErrEnvironment)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDataDirEmptyIdentifier(t *testing.T) {
	_, err := DataDir(fakeEnv("linux", nil, "/home/u"), "", "")
	require.ErrorIs(t, err, media.ErrEnvironment)
}

func TestDataDirOverride(t *testing.T) {
	dir := t.TempDir()
	got, err := DataDir(fakeEnv("linux", nil, ""), "", dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestMediaRoot(t *testing.T) {
	resolve := MediaRoot(fakeEnv("linux", map[string]string{"XDG_DATA_HOME": "/xdg"}, ""), "app", "")
	got, err := resolve()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "app", "media"), got)

	resolve = MediaRoot(fakeEnv("linux", nil, ""), "app", "")
	_, err = resolve()
	require.ErrorIs(t, err, media.ErrEnvironment)
}
