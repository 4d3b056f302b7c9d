package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowStatus      func()
	OnAnnounce        func()
	OnToggleAutostart func(enabled bool)
	OnQuit            func()
}

// Manager handles system tray state.
type Manager struct {
	app           desktop.App
	statusItem    *fyne.MenuItem
	showItem      *fyne.MenuItem
	announceItem  *fyne.MenuItem
	autostartItem *fyne.MenuItem
	callbacks     Callbacks
	prompting     bool
	autostart     bool
	statusLabel   string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.showItem = fyne.NewMenuItem("Show status window", func() {
		if manager.callbacks.OnShowStatus != nil {
			manager.callbacks.OnShowStatus()
		}
	})

	manager.announceItem = fyne.NewMenuItem("Announce reminder", func() {
		if manager.callbacks.OnAnnounce != nil {
			manager.callbacks.OnAnnounce()
		}
	})
	manager.announceItem.Disabled = true

	manager.autostartItem = fyne.NewMenuItem("Start at login", func() {
		manager.autostart = !manager.autostart
		manager.autostartItem.Checked = manager.autostart
		if manager.callbacks.OnToggleAutostart != nil {
			manager.callbacks.OnToggleAutostart(manager.autostart)
		}
		manager.refreshMenu()
	})

	app.SetSystemTrayMenu(manager.buildMenu())

	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetPrompting toggles reminder-related menu items.
func (manager *Manager) SetPrompting(prompting bool) {
	manager.prompting = prompting
	manager.announceItem.Disabled = !prompting
	manager.refreshMenu()
}

// SetAutostart sets the checkbox without invoking the callback.
func (manager *Manager) SetAutostart(enabled bool) {
	manager.autostart = enabled
	manager.autostartItem.Checked = enabled
	manager.refreshMenu()
}

func (manager *Manager) buildMenu() *fyne.Menu {
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	return fyne.NewMenu("DeskBreak",
		manager.statusItem,
		manager.showItem,
		manager.announceItem,
		manager.autostartItem,
		quit,
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.buildMenu())
	}
}
