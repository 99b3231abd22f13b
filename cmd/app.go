package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/iksnae/roblox-ai-studio/internal"
)

// errAdminOnly is returned by the admin commands for other users
var errAdminOnly = errors.New("this command requires an admin account (roblox-ai login admin@roblox.ai)")

// app is everything a command needs, wired from the persistent flags
type app struct {
	cfg        *internal.Config
	store      internal.Store
	tracker    *internal.Tracker
	dispatcher internal.Dispatcher
	session    *internal.SessionStore
	auth       *internal.AuthService
	closeStore func() error
}

// openApp loads the config, opens the store and restores the session
func openApp(ctx context.Context) (*app, error) {
	cfg, err := internal.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if provider != "" {
		if err := cfg.SetProvider(provider); err != nil {
			return nil, err
		}
	}
	if storagePath != "" {
		cfg.StoragePath = storagePath
	}

	a := &app{cfg: cfg, closeStore: func() error { return nil }}
	if ephemeral {
		a.store = internal.NewMemoryStore()
	} else {
		sqlStore, err := internal.NewSQLiteStore(cfg.StoragePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open storage: %w", err)
		}
		a.store = sqlStore
		a.closeStore = sqlStore.Close
	}

	a.tracker = internal.NewTracker(a.store)
	if err := a.tracker.Init(); err != nil {
		internal.LogWarn("Failed to seed counters: %v", err)
	}

	a.dispatcher, err = internal.NewDispatcher(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create dispatcher: %w", err)
	}

	a.session = internal.NewSessionStore(a.store, a.dispatcher, a.tracker)
	if err := a.session.Load(); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	a.auth = internal.NewAuthService(a.store, a.tracker, a.session)

	internal.LogDebug("Provider %s, storage %s", cfg.Provider, cfg.StoragePath)
	return a, nil
}

// Close releases the store
func (a *app) Close() {
	if err := a.closeStore(); err != nil {
		internal.LogWarn("Failed to close storage: %v", err)
	}
}

// requireAdmin returns the signed-in admin, or errAdminOnly
func (a *app) requireAdmin() (*internal.User, error) {
	user, err := a.auth.Current()
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, errAdminOnly
	}
	return user, nil
}

func (a *app) renderer() *internal.Renderer {
	return internal.NewRenderer(80, plain || !internal.IsTerminal())
}
