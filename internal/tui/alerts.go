package tui

import (
	"strings"

	"go.dalton.dog/bubbleup"

	"go.withmatt.com/bucket/internal/config"
)

const toastDurationSeconds = 4

func newAlertModel(theme config.Theme, width int) bubbleup.AlertModel {
	model := *bubbleup.NewAlertModel(width, true, toastDurationSeconds)

	color := strings.TrimSpace(theme.Status.ModeBg)
	if color == "" {
		color = theme.Status.Fg
	}
	model.RegisterNewAlertType(bubbleup.AlertDefinition{
		Key:       bubbleup.InfoKey,
		ForeColor: color,
		Prefix:    bubbleup.InfoNerdSymbol,
	})

	danger := strings.TrimSpace(theme.Modal.DangerFg)
	if danger == "" {
		danger = color
	}
	model.RegisterNewAlertType(bubbleup.AlertDefinition{
		Key:       bubbleup.ErrorKey,
		ForeColor: danger,
		Prefix:    bubbleup.ErrorNerdSymbol,
	})
	return model
}
