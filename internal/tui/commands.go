package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/smartpack/internal/logger"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/persistence"
)

const notifyTimeout = 3 * time.Second

type importedMsg struct {
	path  string
	state models.TripState
	err   error
}

type exportedMsg struct {
	path string
	err  error
}

type savedMsg struct {
	ok bool
}

type storageMsg struct {
	size     models.StorageSize
	location string
	err      error
}

type notifiedMsg struct {
	err error
}

func importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		state, err := persistence.ImportFromFile(path)
		return importedMsg{path: path, state: state, err: err}
	}
}

func exportCmd(dir string, state models.TripState, now time.Time, pdf bool) tea.Cmd {
	return func() tea.Msg {
		var (
			path string
			err  error
		)
		if pdf {
			path, err = persistence.ExportPDFToFile(dir, state, now)
		} else {
			path, err = persistence.ExportToFile(dir, state, now)
		}
		return exportedMsg{path: path, err: err}
	}
}

func (m Model) saveCmd() tea.Cmd {
	gateway, state := m.gateway, m.trip
	return func() tea.Msg {
		return savedMsg{ok: gateway.Save(context.Background(), state)}
	}
}

func (m Model) refreshStorage() tea.Cmd {
	gateway := m.gateway
	return func() tea.Msg {
		location := "unavailable (changes are kept in memory)"
		if store := gateway.Store(); store != nil {
			location = store.GetConfigPath()
		}
		size, err := gateway.Size(context.Background())
		return storageMsg{size: size, location: location, err: err}
	}
}

func (m Model) notifyCmd(tripName string) tea.Cmd {
	if m.notifier == nil {
		return nil
	}
	notifier := m.notifier
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		err := notifier.PackingComplete(ctx, tripName)
		if err != nil {
			logger.Debug("Packing notification not delivered", "error", err)
		}
		return notifiedMsg{err: err}
	}
}
