// Package appdir locates the application-private data directory the way
// desktop shells do:
//
//	%APPDATA%\<identifier>                          (Windows)
//	~/Library/Application Support/<identifier>      (macOS)
//	$XDG_DATA_HOME/<identifier> or ~/.local/share/<identifier>
package appdir

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/contre95/mediastore/src/media"
)

// Env is the subset of the host environment the lookup depends on.
type Env struct {
	GOOS    string
	Getenv  func(string) string
	HomeDir func() (string, error)
}

// HostEnv returns the environment of the running process.
func HostEnv() Env {
	return Env{
		GOOS:    runtime.GOOS,
		Getenv:  os.Getenv,
		HomeDir: os.UserHomeDir,
	}
}

// DataDir returns the application data directory for identifier.
// An override replaces the platform lookup.
func DataDir(env Env, identifier, override string) (string, error) {
	if override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", fmt.Errorf("%w: %w", media.ErrEnvironment, err)
		}
		return abs, nil
	}
	if identifier == "" {
		return "", fmt.Errorf("%w: empty application identifier", media.ErrEnvironment)
	}

	base, err := dataHome(env)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, identifier), nil
}

// MediaRoot returns a media.RootResolver for <data dir>/media. Nothing is
// resolved until the store first asks for it.
func MediaRoot(env Env, identifier, override string) media.RootResolver {
	return func() (string, error) {
		dir, err := DataDir(env, identifier, override)
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, media.RootDirName), nil
	}
}

func dataHome(env Env) (string, error) {
	switch env.GOOS {
	case "windows":
		dir := env.Getenv("APPDATA")
		if dir == "" {
			return "", fmt.Errorf("%w: %%APPDATA%% is not defined", media.ErrEnvironment)
		}
		return dir, nil
	case "darwin", "ios":
		home, err := homeDir(env)
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		if dir := env.Getenv("XDG_DATA_HOME"); dir != "" && filepath.IsAbs(dir) {
			return dir, nil
		}
		home, err := homeDir(env)
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}

func homeDir(env Env) (string, error) {
	home, err := env.HomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", media.ErrEnvironment, err)
	}
	if home == "" {
		return "", fmt.Errorf("%w: home directory is not defined", media.ErrEnvironment)
	}
	return home, nil
}
