// Package cli is the command line interface of the media store.
//
// Usage:
//
//	mediastore [--config config.yaml] <command> [args]
//
// Commands:
//
//	serve       - Run the HTTP bridge for the host UI
//	import      - Copy a file into a category
//	path        - Print the absolute path of a managed file
//	base        - Print the media root, creating it if needed
//	list        - List the files of a category
//	delete      - Remove a managed file
//	extensions  - Print the file picker extensions per category
//	config      - Show or save the effective configuration
package cli

import (
	"fmt"
	"log/slog"

	"github.com/contre95/mediastore/src/features/config"
	"github.com/contre95/mediastore/src/features/logging"
	"github.com/contre95/mediastore/src/features/mediastore"
	"github.com/contre95/mediastore/src/infra/appdir"
	"github.com/contre95/mediastore/src/infra/files"
	"github.com/spf13/cobra"
)

// session holds what every command needs once the configuration is loaded.
type session struct {
	configPath string
	env        appdir.Env

	cfg   *config.Manager
	store *files.FileStore
}

// load reads the configuration, installs the logger and builds the store.
func (r *session) load() error {
	cfg, err := config.Load(r.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	slog.SetDefault(logging.SetupLogger(cfg))

	r.cfg = cfg
	r.store = files.NewFileStore(appdir.MediaRoot(r.env, cfg.Get().AppIdentifier, cfg.Get().DataDir))
	return nil
}

// service returns a media store service without metrics.
func (r *session) service() *mediastore.Service {
	return mediastore.NewService(r.store, nil)
}

// NewRootCommand builds the command tree on top of the given host environment.
func NewRootCommand(env appdir.Env) *cobra.Command {
	r := &session{env: env}

	root := &cobra.Command{
		Use:   "mediastore",
		Short: "Local media library for the display app",
		Long: `mediastore - keeps imported images, audio and video under the app data directory.

Files are stored as <data-dir>/media/<Category>/<filename>, where Category
is one of Image, Audio or Video. The data directory is the platform's
application data directory for the configured app identifier, unless
dataDir or MEDIASTORE_DATA_DIR says otherwise.

Examples:
  mediastore import ~/Pictures/banner.png Image
  mediastore list Image
  mediastore serve`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.load()
		},
	}
	root.PersistentFlags().StringVarP(&r.configPath, "config", "c", "config.yaml", "path to the configuration file")

	root.AddCommand(
		newServeCommand(r),
		newImportCommand(r),
		newPathCommand(r),
		newBaseCommand(r),
		newListCommand(r),
		newDeleteCommand(r),
		newExtensionsCommand(r),
		newConfigCommand(r),
	)
	return root
}

// Execute runs the root command against the host environment.
func Execute() error {
	return NewRootCommand(appdir.HostEnv()).Execute()
}
