package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/deskpilot/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)

	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	cancelledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	dimStyle = lipgloss.NewStyle().Faint(true)
)

func renderStatus(status model.RunStatus) string {
	switch status {
	case model.StatusSuccess:
		return successStyle.Render("success")
	case model.StatusCancelled:
		return cancelledStyle.Render("cancelled")
	default:
		return failedStyle.Render("failed")
	}
}
