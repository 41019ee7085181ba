package app

import (
	"github.com/sirupsen/logrus"

	"cryptochat/internal/crypto"
	"cryptochat/internal/directory"
	"cryptochat/internal/domain"
	"cryptochat/internal/services/chat"
	"cryptochat/internal/services/identity"
	"cryptochat/internal/store"
	"cryptochat/internal/transport"
)

// Wire bundles all stores, services, and transports for the CLI.
type Wire struct {
	Config     Config
	Logger     *logrus.Logger
	Directory  *directory.Directory
	Bus        *transport.Bus
	Identity   *identity.Service
	Registry   *chat.Registry
	SigningKey domain.SigningKeyStore
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}
	curve, err := crypto.ParseCurve(cfg.Curve)
	if err != nil {
		return nil, err
	}

	var signing domain.SigningKeyStore
	if cfg.Home != "" {
		signing = store.NewSigningKeyFileStore(cfg.Home)
	}

	dir := directory.New(directory.WithLogger(logger))
	bus := transport.NewBus(transport.WithLogger(logger))

	idOpts := []identity.Option{identity.WithLogger(logger)}
	if signing != nil {
		idOpts = append(idOpts, identity.WithSigningKeyStore(signing))
	}
	ids := identity.New(curve, idOpts...)

	reg := chat.NewRegistry(dir, bus, ids,
		chat.WithSalt([]byte(cfg.Salt)),
		chat.WithLogger(logger),
	)

	return &Wire{
		Config:     cfg,
		Logger:     logger,
		Directory:  dir,
		Bus:        bus,
		Identity:   ids,
		Registry:   reg,
		SigningKey: signing,
	}, nil
}

// Roster returns the configured demo cast, creating participants as needed.
func (w *Wire) Roster() ([]*chat.Participant, error) {
	names := make([]domain.Identity, len(w.Config.Roster))
	for i, n := range w.Config.Roster {
		names[i] = domain.Identity(n)
	}
	return w.Registry.Roster(names...)
}
