package update

import (
	"strings"
	"time"

	"github.com/sandeepkv93/leettrack/internal/views"
)

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m Model) renderReportIfVisible() string {
	if !m.ReportVisible {
		return ""
	}
	return m.reportViewport.View()
}

func (m Model) renderReport() string {
	if m.Tracker == nil {
		return ""
	}
	return views.RenderMarkdown(views.BuildReport(m.Tracker.Summary()), m.glamourStyle)
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	m.Notifications = append(m.Notifications, Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	})
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
}
