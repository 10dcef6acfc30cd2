package domain

import (
	"math"
	"strings"
)

// GNOME stores its delays as uint32 seconds.
const (
	MaxDelaySeconds   = math.MaxUint32
	MaxTimeoutMinutes = MaxDelaySeconds / 60
)

type ScreensaverStyle struct {
	Key           string
	Name          string
	URI           string
	CustomMessage bool
}

// ScreensaverStyles are listed in the order they are offered.
var ScreensaverStyles = []ScreensaverStyle{
	{Key: "a", Name: "Default Ubuntu Screensaver", URI: "file:///usr/share/backgrounds/ubuntu-wallpaper-d.png"},
	{Key: "b", Name: "Numbat Wallpaper", URI: "file:///usr/share/backgrounds/Numbat_wallpaper_dimmed_3480x2160.png"},
	{Key: "c", Name: "Fuji San", URI: "file:///usr/share/backgrounds/Fuji_san_by_amaral.png"},
	{Key: "d", Name: "Custom Message", URI: "file:///usr/share/backgrounds/ubuntu-wallpaper-d.png", CustomMessage: true},
}

// FindScreensaverStyle matches a style key case-insensitively.
func FindScreensaverStyle(key string) (ScreensaverStyle, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, s := range ScreensaverStyles {
		if s.Key == key {
			return s, true
		}
	}
	return ScreensaverStyle{}, false
}

func ScreensaverStyleKeys() []string {
	keys := make([]string, len(ScreensaverStyles))
	for i, s := range ScreensaverStyles {
		keys[i] = s.Key
	}
	return keys
}
