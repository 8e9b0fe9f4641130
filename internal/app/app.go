package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/andy/reconnect/internal/command"
	"github.com/andy/reconnect/internal/config"
	"github.com/andy/reconnect/internal/crypto"
	"github.com/andy/reconnect/internal/db"
	"github.com/andy/reconnect/internal/logger"
	"github.com/andy/reconnect/internal/model"
	"github.com/andy/reconnect/internal/repository"
	"github.com/andy/reconnect/internal/storage"
)

// App is the dependency injection container for all application components
type App struct {
	Config  *config.Config
	Log     *logger.Logger
	Storage storage.Storage
	Model   *model.Model
}

// New loads the default config and builds the App from it.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(ctx, cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing).
// It opens the configured storage and loads the address book from it.
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	log, err := logger.New(logger.Options{Mode: cfg.Log.Mode, Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := openStorage(ctx, cfg)
	if err != nil {
		log.Sync()
		return nil, err
	}

	a := &App{
		Config:  cfg,
		Log:     log,
		Storage: store,
	}
	a.Model = model.New(a.load(ctx), log)
	return a, nil
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	if cfg.Data.Backend != config.BackendSQLCipher {
		return storage.NewFileStorage(cfg.Data.Path), nil
	}

	keyring := crypto.NewKeyring()
	password, err := keyring.GetKey()
	if err != nil {
		fmt.Println("Setting up address book encryption for the first time...")
		password, err = promptForPassword()
		if err != nil {
			return nil, fmt.Errorf("failed to set password: %w", err)
		}
		if err := keyring.SetKey(password); err != nil {
			return nil, fmt.Errorf("failed to store encryption key: %w", err)
		}
	}

	store, err := db.OpenStore(ctx, cfg.Data.Path, password)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return store, nil
}

// load reads the stored book. A missing book starts from sample data (or
// empty); unreadable data is logged and replaced by an empty book.
func (a *App) load(ctx context.Context) *repository.AddressBook {
	log := a.Log.With("path", a.Storage.Path())

	ab, err := storage.LoadAddressBook(ctx, a.Storage)
	switch {
	case err == nil:
		log.Info("loaded address book",
			"clients", len(ab.Clients()), "properties", len(ab.Properties()),
			"deals", len(ab.Deals()), "events", len(ab.Events()))
		return ab
	case errors.Is(err, storage.ErrNoData):
		if !a.Config.Data.SeedSample {
			log.Info("no saved data, starting with an empty address book")
			return repository.New()
		}
		sample, err := storage.SampleDocument().ToAddressBook()
		if err != nil {
			log.Error("sample data is invalid", "error", err)
			return repository.New()
		}
		log.Info("no saved data, starting with sample data")
		return sample
	default:
		log.Warn("could not load address book, starting with an empty one", "error", err)
		return repository.New()
	}
}

// Execute runs cmd against the model.
func (a *App) Execute(cmd command.Command) (*command.Result, error) {
	a.Log.Debug("executing command", "command", fmt.Sprintf("%T", cmd))
	res, err := cmd.Execute(a.Model)
	if err != nil {
		a.Log.Debug("command failed", "command", fmt.Sprintf("%T", cmd), "error", err)
		return nil, err
	}
	return res, nil
}

// Save writes the whole address book to storage.
func (a *App) Save(ctx context.Context) error {
	if err := storage.SaveAddressBook(ctx, a.Storage, a.Model.AddressBook()); err != nil {
		a.Log.Error("failed to save address book", "path", a.Storage.Path(), "error", err)
		return fmt.Errorf("failed to save address book: %w", err)
	}
	a.Log.Debug("saved address book", "path", a.Storage.Path())
	return nil
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	defer a.Log.Sync()
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// promptForPassword prompts user for a new database password (first run)
func promptForPassword() (string, error) {
	fmt.Println()
	fmt.Println("Your address book will be encrypted with a password.")
	fmt.Println("This password will be stored securely in your system keyring.")
	fmt.Println()
	fmt.Print("Enter a password for database encryption: ")

	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if len(password) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}
	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("✓ Database encryption configured successfully")
	fmt.Println()

	return string(password), nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}
