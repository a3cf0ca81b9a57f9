package app

import (
	"net/http"
	"os"
	"path/filepath"

	"leafdesk/internal/assets"
	"leafdesk/internal/leafal"
	"leafdesk/internal/services/profile"
	"leafdesk/internal/store"
)

const storeFile = "store.json"

// Wire bundles the stores, services and clients for the CLI.
type Wire struct {
	Store    *store.Document
	Service  *leafal.Client
	Blobs    *assets.Dir
	Registry *profile.Registry
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, err
	}

	doc, err := store.Open(filepath.Join(cfg.DataDir, storeFile))
	if err != nil {
		return nil, err
	}

	svc := leafal.New(cfg.APIBase, cfg.ClientID, &http.Client{Timeout: cfg.HTTPTimeout})
	blobs := assets.NewDir(cfg.DataDir)

	reg, err := profile.NewRegistry(profile.Deps{
		Store:   doc,
		Service: svc,
		Blobs:   blobs,
	})
	if err != nil {
		return nil, err
	}

	return &Wire{
		Store:    doc,
		Service:  svc,
		Blobs:    blobs,
		Registry: reg,
	}, nil
}
