package main

import (
	"fmt"
	"sync/atomic"

	"csv-flashcards/internal/config"
	"csv-flashcards/internal/controllers"
	"csv-flashcards/internal/logger"
	"csv-flashcards/internal/models"
	"csv-flashcards/internal/services"
	"csv-flashcards/internal/shutdown"
	"csv-flashcards/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// Application represents the windowed application using MVC architecture
type Application struct {
	// Core components
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	// MVC Components
	controller *controllers.MainController
	view       *views.MainView

	// Lifecycle management
	shutdown *shutdown.Manager
	stopped  atomic.Bool
	file     string
}

// NewApplication creates and wires the window, view and controller
func NewApplication(
	cfg *config.Config,
	appLogger logger.Logger,
	deckService *services.DeckService,
	repo *models.SessionRepository,
	rng models.Shuffler,
	manager *shutdown.Manager,
) *Application {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	windowSize := fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight))
	window.Resize(windowSize)
	window.CenterOnScreen()

	mainController := controllers.NewMainController(deckService, repo, rng, appLogger,
		controllers.WithLoadTimeout(cfg.LoadTimeout),
	)
	mainView := views.NewMainView(window)
	mainController.SetView(mainView)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: mainController,
		view:       mainView,
		shutdown:   manager,
		file:       cfg.File,
	}

	// Registered first so it is stopped last
	manager.Register("window", shutdown.Func(func() {
		if !application.stopped.Load() {
			fyne.Do(fyneApp.Quit)
		}
	}))
	manager.Register("controller", mainController)

	application.setupWindowEvents()

	appLogger.Info("Application", "window initialized", map[string]interface{}{
		"window_size": fmt.Sprintf("%.0fx%.0f", windowSize.Width, windowSize.Height),
	})

	return application
}

// Run shows the window and blocks until the application quits
func (a *Application) Run() {
	if a.file != "" {
		a.controller.LoadFile(a.file)
	}
	a.window.ShowAndRun()
}

// setupWindowEvents stops background work before the window goes away
func (a *Application) setupWindowEvents() {
	a.fyneApp.Lifecycle().SetOnStopped(func() {
		a.stopped.Store(true)
	})

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.shutdown.Shutdown()
		a.window.Close()
	})
}
