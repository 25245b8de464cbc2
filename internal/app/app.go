package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/brandvoice/archivist/internal/common"
	"github.com/brandvoice/archivist/internal/handlers"
	"github.com/brandvoice/archivist/internal/interfaces"
	"github.com/brandvoice/archivist/internal/services/backup"
	"github.com/brandvoice/archivist/internal/services/documents"
	"github.com/brandvoice/archivist/internal/services/reader"
	"github.com/brandvoice/archivist/internal/services/search"
	badgerstore "github.com/brandvoice/archivist/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	StorageManager interfaces.StorageManager

	// Services
	SearchService   interfaces.SearchService
	DocumentService interfaces.DocumentService
	ReaderService   interfaces.ReaderService
	BackupScheduler *backup.Scheduler

	// HTTP handlers
	APIHandler      *handlers.APIHandler
	SearchHandler   *handlers.SearchHandler
	DocumentHandler *handlers.DocumentHandler
	ReaderHandler   *handlers.ReaderHandler
	WSHandler       *handlers.WebSocketHandler
}

// New constructs the application: storage, services, handlers, scheduler.
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	storageManager, err := badgerstore.NewManager(logger, &config.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	docStorage := storageManager.DocumentStorage()

	searchService := search.NewService(docStorage, logger)
	documentService := documents.NewService(docStorage, logger)
	readerService := reader.NewService(docStorage, logger)

	wsHandler := handlers.NewWebSocketHandler(logger)
	readerService.AddListener(wsHandler)

	scheduler := backup.NewScheduler(documentService, config.Backup, logger)

	app := &App{
		Config:         config,
		Logger:         logger,
		StorageManager: storageManager,

		SearchService:   searchService,
		DocumentService: documentService,
		ReaderService:   readerService,
		BackupScheduler: scheduler,

		APIHandler:      handlers.NewAPIHandler(documentService, logger),
		SearchHandler:   handlers.NewSearchHandler(searchService, logger),
		DocumentHandler: handlers.NewDocumentHandler(documentService, config.Importing.MaxFileSize, logger),
		ReaderHandler:   handlers.NewReaderHandler(readerService, logger),
		WSHandler:       wsHandler,
	}

	if err := scheduler.Start(); err != nil {
		storageManager.Close()
		return nil, err
	}

	logger.Info().
		Str("badger_path", config.Storage.Badger.Path).
		Msg("Application initialized")

	return app, nil
}

// Shutdown stops background work and closes storage
func (a *App) Shutdown(ctx context.Context) error {
	a.BackupScheduler.Stop()

	if err := a.StorageManager.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}

	a.Logger.Info().Msg("Application shut down")
	return nil
}
