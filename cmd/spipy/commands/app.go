package commands

import (
	"errors"
	"os"

	"github.com/bleeeehhhhhhhhh/spipy/internal/config"
	"github.com/bleeeehhhhhhhhh/spipy/internal/mirror"
	"github.com/bleeeehhhhhhhhh/spipy/internal/printer"
	"github.com/bleeeehhhhhhhhh/spipy/internal/store"
	"github.com/bleeeehhhhhhhhh/spipy/pkg/feed"
	"github.com/redis/go-redis/v9"
)

// app bundles the wired-up components every feed command needs: the loaded
// config, the local store (already populated from durable storage), and -
// when a remote section is configured - the board client and mirror.
type app struct {
	cfg    *config.Config
	store  *store.Store
	client *feed.Client // nil when no remote is configured
	mirror *mirror.Mirror
}

// openApp loads .spipy.yml from the working directory and wires the store
// and, if configured, the board mirror.
func openApp() (*app, error) {
	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, printer.Error(
				"no .spipy.yml found",
				"Spipy needs a project configuration in the current directory.",
				[]string{"Create one first:\n  spipy init"},
			)
		}
		return nil, printer.Error(
			"could not load .spipy.yml",
			err.Error(),
			[]string{"Fix the configuration or recreate it:\n  spipy init"},
		)
	}

	storage, err := store.NewFileStorage(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	st := store.New(storage)
	if err := st.Load(); err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, store: st}

	if cfg.HasRemote() {
		client, err := feed.NewClient(&redis.Options{
			Addr:     cfg.Remote.RedisAddr,
			Password: cfg.Remote.RedisPassword,
			DB:       cfg.Remote.RedisDB,
		}, cfg.Board)
		if err != nil {
			return nil, err
		}
		a.client = client
		a.mirror = mirror.New(st, client, os.Stderr)
	}

	return a, nil
}

// Close releases the board connection, if any.
func (a *app) Close() {
	if a.client != nil {
		a.client.Close()
	}
}

// hasRemote reports whether this app is mirroring to a board.
func (a *app) hasRemote() bool {
	return a.mirror != nil
}
