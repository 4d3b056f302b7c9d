package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"deskbreak/internal/core/scheduler"
	"deskbreak/internal/platform"
	"deskbreak/internal/storage"
	"deskbreak/internal/ui/statuswin"
	"deskbreak/internal/ui/tray"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	flag "github.com/spf13/pflag"
)

const appName = "DeskBreak"

func main() {
	var (
		configPath   string
		tickInterval time.Duration
	)
	flag.StringVar(&configPath, "config", "", "path to the config file")
	flag.DurationVar(&tickInterval, "tick", 10*time.Second, "scheduler tick period")
	flag.Parse()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	if configPath == "" {
		configPath, err = storage.DefaultConfigPath(appName)
		if err != nil {
			log.Fatalf("resolve config path: %v", err)
		}
	}
	config, err := storage.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	fyneApp := app.NewWithID("com.deskbreak.app")
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	sched := scheduler.New(config, scheduler.Options{TickInterval: tickInterval})
	sched.SetIdleProvider(platform.NewIdleProvider())
	sched.SetMeetingDetector(platform.NewMeetingDetector())
	speaker := platform.NewSpeaker()
	service := platform.NewService()

	statusWindow := statuswin.New(fyneApp, statuswin.Config{Title: appName})
	statusWindow.SetOnDone(func() {
		sched.Acknowledge()
	})

	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnShowStatus: func() {
			statusWindow.Show()
		},
		OnAnnounce: func() {
			if prompt := sched.Snapshot().Prompt; prompt != "" {
				if err := speaker.Speak(prompt); err != nil {
					log.Printf("announce: %v", err)
				}
			}
		},
		OnToggleAutostart: func(enabled bool) {
			execPath, err := os.Executable()
			if err != nil {
				log.Printf("autostart: %v", err)
				return
			}
			if enabled {
				err = service.EnableAutostart(appName, execPath)
			} else {
				err = service.DisableAutostart(appName)
			}
			if err != nil {
				log.Printf("autostart: %v", err)
			}
		},
		OnQuit: func() {
			sched.Stop()
			fyneApp.Quit()
		},
	})

	events := sched.Subscribe(8)
	go func() {
		for event := range events {
			handleEvent(event, statusWindow, trayManager, speaker)
		}
	}()

	sched.Start()
	statusWindow.Show()
	fyneApp.Run()
}

func handleEvent(event scheduler.Event, statusWindow *statuswin.Window, trayManager *tray.Manager, speaker platform.Speaker) {
	switch event.Type {
	case scheduler.EventPrompt:
		statusWindow.SetPrompt(event.Prompt)
		statusWindow.Show()
		trayManager.SetPrompting(true)
		if err := speaker.Speak(event.Prompt); err != nil {
			log.Printf("speak: %v", err)
		}
	case scheduler.EventReport:
		statusWindow.SetStatusReport(event.Message)
	case scheduler.EventUpdate:
		statusWindow.SetLatestUpdate(event.Message)
		trayManager.SetStatus(event.Message)
		fmt.Printf("\rupdate: %s", event.Message)
	case scheduler.EventEmphasize:
		statusWindow.Raise()
	case scheduler.EventAnnounce:
		if err := speaker.Speak(event.Prompt); err != nil {
			log.Printf("announce: %v", err)
		}
	case scheduler.EventAcknowledged:
		statusWindow.SetPrompt("")
		trayManager.SetPrompting(false)
	case scheduler.EventError:
		log.Printf("tick: %s", event.Message)
	}
}
