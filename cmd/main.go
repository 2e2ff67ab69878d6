package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"taka8rie/internal/config"
	"taka8rie/internal/core/countdown"
	"taka8rie/internal/core/model"
	"taka8rie/internal/i18n"
	"taka8rie/internal/platform"
	"taka8rie/internal/storage"
	"taka8rie/internal/ui/celebration"
	countdownui "taka8rie/internal/ui/countdown"
	"taka8rie/internal/ui/preferences"
	"taka8rie/internal/ui/tray"
	"taka8rie/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"go.uber.org/zap"
)

const (
	appName     = "taka8rie"
	appID       = "com.taka8rie.countdown"
	eventBuffer = 16
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Info("Another instance is running", zap.Error(err))
			return
		}
		logger.Fatal("Failed to acquire single instance lock", zap.Error(err))
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn("Failed to load settings, using defaults", zap.Error(err))
	}

	catalog, err := i18n.Load(resources.Locales(), i18n.DefaultLanguage)
	if err != nil {
		logger.Fatal("Failed to load locales", zap.Error(err))
	}
	translator, err := catalog.Translator(cfg.ResolveLanguage(settings, platform.SystemLocale))
	if err != nil {
		logger.Fatal("Failed to build translator", zap.Error(err))
	}
	countdownConfig, err := cfg.Countdown(settings)
	if err != nil {
		logger.Warn("Invalid countdown settings, using defaults", zap.Error(err))
	}
	logger.Info("Starting countdown",
		zap.String("language", translator.Language()),
		zap.Bool("test_mode", countdownConfig.ForceArrived),
		zap.Stringer("target_month", countdownConfig.Month),
		zap.Int("target_day", countdownConfig.Day),
	)

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon("cake.svg"))

	window := countdownui.New(fyneApp, countdownui.Config{
		Title:      appName,
		Fullscreen: settings.Fullscreen,
	})
	effect := celebration.New(celebration.DefaultConfig(), window.Layer())

	engine, err := countdown.New(countdownConfig, window, translator, logger)
	if err != nil {
		logger.Fatal("Failed to create countdown engine", zap.Error(err))
	}
	engine.SetEffect(effect)

	frames := countdownui.NewFrameDriver()
	scheduler := countdown.NewScheduler(engine, frames, model.SchedulerConfig{UpdateInterval: time.Second})
	rearm := countdown.NewRearm(countdown.SystemClock, fyne.Do, func() {
		scheduler.Start()
	}, logger)
	scheduler.SetOnFinished(func(state countdown.DisplayState) {
		if state == countdown.StateArrived {
			rearm.Arm(countdownConfig.Location)
		}
	})

	guard.SetOnActivate(func() {
		fyne.Do(window.Show)
	})

	service := platform.NewService()
	var trayManager *tray.Manager
	var prefsWindow *preferences.Window
	prefsWindow = preferences.New(fyneApp, settings, catalog.Languages(), preferences.LocalizedLabels(translator), func(updated preferences.Settings) {
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			logger.Error("Failed to save settings", zap.Error(err))
		}
		if err := platform.SetAutostart(service, autostartEntry(), settings.Autostart); err != nil {
			logger.Warn("Failed to update autostart", zap.Error(err))
		}

		updatedTranslator, err := catalog.Translator(cfg.ResolveLanguage(settings, platform.SystemLocale))
		if err != nil {
			logger.Error("Failed to switch language", zap.Error(err))
		} else {
			engine.SetFormatter(updatedTranslator)
			prefsWindow.SetLabels(preferences.LocalizedLabels(updatedTranslator))
			if trayManager != nil {
				trayManager.SetLabels(tray.LocalizedLabels(updatedTranslator))
			}
		}

		countdownConfig, err = cfg.Countdown(settings)
		if err != nil {
			logger.Warn("Invalid countdown settings, using defaults", zap.Error(err))
		}
		engine.UpdateConfig(countdownConfig)
		window.SetFullscreen(settings.Fullscreen)

		rearm.Cancel()
		if !scheduler.Start() && engine.State() != countdown.StateArrived {
			logger.Warn("Countdown loop not running after settings change")
		}
	})

	quit := func() {
		rearm.Cancel()
		frames.Stop()
		effect.Stop()
		engine.Close()
		fyneApp.Quit()
	}

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.LocalizedLabels(translator), tray.Callbacks{
			OnShow:        window.Show,
			OnPreferences: prefsWindow.Show,
			OnQuit:        quit,
		})
		desktopApp.SetSystemTrayIcon(fyneApp.Icon())

		events := engine.Subscribe(eventBuffer)
		go func() {
			for event := range events {
				if event.Text == "" {
					continue
				}
				text := event.Text
				fyne.Do(func() {
					trayManager.SetStatus(text)
				})
			}
		}()
	} else {
		logger.Info("System tray unsupported, closing the window quits")
		window.SetOnClose(quit)
	}

	fyneApp.Lifecycle().SetOnStarted(func() {
		window.Show()
		scheduler.Start()
	})
	fyneApp.Run()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func autostartEntry() platform.AutostartEntry {
	execPath, err := os.Executable()
	if err != nil {
		execPath = os.Args[0]
	}
	return platform.AutostartEntry{
		AppName:  appName,
		ExecPath: execPath,
	}
}
