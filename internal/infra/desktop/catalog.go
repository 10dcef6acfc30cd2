// Package desktop holds the command templates for a GNOME desktop with
// PulseAudio, xbacklight and NetworkManager.
package desktop

import (
	"fmt"
	"strconv"
	"strings"

	"cmd-agent/internal/domain"
)

const (
	screensaverSchema = "org.gnome.desktop.screensaver"
	sessionSchema     = "org.gnome.desktop.session"
	mixer             = "amixer -D pulse sset Master"

	maxLevel = 100
)

type key struct {
	category domain.Category
	action   domain.Action
}

// Catalog is immutable after construction.
type Catalog struct {
	templates map[key]domain.Template
}

func NewCatalog() *Catalog {
	screensaverOn := domain.Literal(gsettings(screensaverSchema, "idle-activation-enabled", "true"))
	screensaverOff := domain.Literal(gsettings(screensaverSchema, "idle-activation-enabled", "false"))
	wifiOn := domain.Literal("nmcli radio wifi on")
	wifiOff := domain.Literal("nmcli radio wifi off")

	return &Catalog{templates: map[key]domain.Template{
		{domain.CategoryScreensaver, domain.ActionTurnOn}:  screensaverOn,
		{domain.CategoryScreensaver, domain.ActionEnable}:  screensaverOn,
		{domain.CategoryScreensaver, domain.ActionTurnOff}: screensaverOff,
		{domain.CategoryScreensaver, domain.ActionDisable}: screensaverOff,
		{domain.CategoryScreensaver, domain.ActionSetTimeout}: domain.Templated(func(minutes string) ([]string, error) {
			n, err := count("minutes", minutes, domain.MaxTimeoutMinutes)
			if err != nil {
				return nil, err
			}
			return []string{gsettings(screensaverSchema, "lock-delay", strconv.FormatInt(n*60, 10))}, nil
		}),
		{domain.CategoryScreensaver, domain.ActionSetLockDelay}: domain.Templated(func(seconds string) ([]string, error) {
			n, err := count("seconds", seconds, domain.MaxDelaySeconds)
			if err != nil {
				return nil, err
			}
			return []string{gsettings(screensaverSchema, "lock-delay", strconv.FormatInt(n, 10))}, nil
		}),
		{domain.CategoryScreensaver, domain.ActionSetStyle}: domain.Templated(func(uri string) ([]string, error) {
			return []string{gsettings(screensaverSchema, "picture-uri", Quote(uri))}, nil
		}),
		{domain.CategoryScreensaver, domain.ActionEnableMessage}:  domain.Literal(gsettings(screensaverSchema, "status-message-enabled", "true")),
		{domain.CategoryScreensaver, domain.ActionDisableMessage}: domain.Literal(gsettings(screensaverSchema, "status-message-enabled", "false")),
		{domain.CategoryScreensaver, domain.ActionSetIdleDelay}: domain.Templated(func(seconds string) ([]string, error) {
			n, err := count("seconds", seconds, domain.MaxDelaySeconds)
			if err != nil {
				return nil, err
			}
			return []string{gsettings(sessionSchema, "idle-delay", strconv.FormatInt(n, 10))}, nil
		}),

		{domain.CategoryVolume, domain.ActionIncrease}: domain.Literal(mixer + " 5%+"),
		{domain.CategoryVolume, domain.ActionDecrease}: domain.Literal(mixer + " 5%-"),
		{domain.CategoryVolume, domain.ActionMute}:     domain.Literal(mixer + " mute"),
		{domain.CategoryVolume, domain.ActionUnmute}:   domain.Literal(mixer + " unmute"),
		{domain.CategoryVolume, domain.ActionSet}: domain.Templated(func(level string) ([]string, error) {
			n, err := count("level", level, maxLevel)
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("%s %d%%", mixer, n)}, nil
		}),

		{domain.CategoryBrightness, domain.ActionIncrease}: domain.Literal("xbacklight -inc 10"),
		{domain.CategoryBrightness, domain.ActionDecrease}: domain.Literal("xbacklight -dec 10"),
		{domain.CategoryBrightness, domain.ActionSet}: domain.Templated(func(level string) ([]string, error) {
			n, err := count("level", level, maxLevel)
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("xbacklight -set %d", n)}, nil
		}),

		{domain.CategoryWifi, domain.ActionTurnOn}:  wifiOn,
		{domain.CategoryWifi, domain.ActionEnable}:  wifiOn,
		{domain.CategoryWifi, domain.ActionTurnOff}: wifiOff,
		{domain.CategoryWifi, domain.ActionDisable}: wifiOff,
		{domain.CategoryWifi, domain.ActionConnect}: domain.Templated(func(ssid string) ([]string, error) {
			if strings.TrimSpace(ssid) == "" {
				return nil, fmt.Errorf("empty network name")
			}
			return []string{"nmcli device wifi connect " + Quote(ssid)}, nil
		}),
	}}
}

func (c *Catalog) Lookup(category domain.Category, action domain.Action) (domain.Template, bool) {
	t, ok := c.templates[key{category, action}]
	return t, ok
}

func gsettings(schema, k, value string) string {
	return fmt.Sprintf("gsettings set %s %s %s", schema, k, value)
}

// count parses an integer in [0, limit] so that nothing else reaches the
// shell through a numeric slot.
func count(name, value string, limit int64) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s %q is not a non-negative whole number", name, value)
	}
	if n > limit {
		return 0, fmt.Errorf("%s %d is larger than %d", name, n, limit)
	}
	return n, nil
}

// Quote wraps s in single quotes for POSIX shell word splitting.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
