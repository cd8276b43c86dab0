package initializer

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/wlsc/accounts/pkg/config"
)

type levelStyle struct {
	level  log.Level
	key    string
	symbol string
	color  lipgloss.AdaptiveColor
}

var levelStyles = []levelStyle{
	{log.ErrorLevel, "error", "❌", lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}},
	{log.WarnLevel, "warn", "⚠️", lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}},
	{log.InfoLevel, "info", "ℹ️", lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}},
	{log.DebugLevel, "debug", "🐛", lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}},
}

// Keys rendered in the debug color.
var mutedKeys = []string{"prefix", "caller", "time", "transferID", "accountID"}

var formatters = map[string]log.Formatter{
	"json":   log.JSONFormatter,
	"text":   log.TextFormatter,
	"logfmt": log.LogfmtFormatter,
}

func loggerStyles() *log.Styles {
	styles := log.DefaultStyles()
	for _, ls := range levelStyles {
		styles.Levels[ls.level] = lipgloss.NewStyle().
			SetString(ls.symbol).
			Bold(true).
			Padding(0, 1).
			Foreground(ls.color)
		styles.Keys[ls.key] = lipgloss.NewStyle().Foreground(ls.color)
		styles.Values[ls.key] = lipgloss.NewStyle().Bold(true)
	}
	muted := levelStyles[len(levelStyles)-1].color
	for _, key := range mutedKeys {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(muted)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	return styles
}

// NewLogger builds a slog.Logger backed by a styled charmbracelet handler
// writing to w. Unknown formats fall back to text.
func NewLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	formatter := log.TextFormatter
	if f, ok := formatters[cfg.Format]; ok {
		formatter = f
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	handler.SetStyles(loggerStyles())

	return slog.New(handler)
}
