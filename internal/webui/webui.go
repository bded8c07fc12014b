package webui

import "tripsplit.mtransit.org/internal/app"

// WebUI serves the human-readable debug pages.
type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}
