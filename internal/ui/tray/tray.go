package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnAdd         func()
	OnRemove      func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	volume     int
	settling   bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}
	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.refreshMenu()
	return manager
}

// SetVolume updates the consumed volume shown in the status line.
func (manager *Manager) SetVolume(volume int) {
	if manager.volume == volume {
		return
	}
	manager.volume = volume
	manager.refreshMenu()
}

// SetSettling marks whether the gauge is still moving toward its target.
func (manager *Manager) SetSettling(settling bool) {
	if manager.settling == settling {
		return
	}
	manager.settling = settling
	manager.refreshMenu()
}

// Status returns the status line text.
func (manager *Manager) Status() string {
	status := fmt.Sprintf("Consumed: %d ml", manager.volume)
	if manager.settling {
		status += " (filling...)"
	}
	return status
}

func (manager *Manager) menu() *fyne.Menu {
	manager.statusItem.Label = manager.Status()
	return fyne.NewMenu("WaterBalance",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show gauge", call(&manager.callbacks.OnShow)),
		fyne.NewMenuItem("Add 200 ml", call(&manager.callbacks.OnAdd)),
		fyne.NewMenuItem("Remove 150 ml", call(&manager.callbacks.OnRemove)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", call(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItem("Quit", call(&manager.callbacks.OnQuit)),
	)
}

func (manager *Manager) refreshMenu() {
	menu := manager.menu()
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(menu)
	}
}

func call(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
