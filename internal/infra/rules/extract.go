// Package rules maps free-form phrases to intents with fixed keyword and
// pattern rules.
package rules

import (
	"context"
	"regexp"
	"strings"

	"cmd-agent/internal/domain"
)

// keywords matches any of its phrases as whole words.
type keywords []*regexp.Regexp

func words(phrases ...string) keywords {
	return compile(``, phrases)
}

// nouns is words that also accepts a plural "s".
func nouns(phrases ...string) keywords {
	return compile(`s?`, phrases)
}

func compile(suffix string, phrases []string) keywords {
	k := make(keywords, len(phrases))
	for i, p := range phrases {
		k[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(p) + suffix + `\b`)
	}
	return k
}

func (k keywords) in(text string) bool {
	for _, re := range k {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

var (
	screensaverWords = nouns("screensaver", "screen saver")
	volumeWords      = nouns("volume")
	brightnessWords  = nouns("brightness")
	wifiWords        = nouns("wifi", "wi-fi", "wireless")

	onWords      = words("on", "enable", "activate", "turn on", "back on")
	offWords     = words("off", "disable", "deactivate", "turn off")
	timeoutWords = words("timeout", "time")

	louderWords  = words("up", "increase", "higher", "louder")
	quieterWords = words("down", "decrease", "lower", "quieter")
	muteWords    = words("mute", "silent", "quiet")
	unmuteWords  = words("unmute")
	setWords     = words("set")

	brighterWords = words("up", "increase", "higher", "louder", "brighter")
	dimmerWords   = words("down", "decrease", "lower", "quieter", "dimmer")

	minutesPattern = regexp.MustCompile(`(\d+)\s*(?:minute|min)`)
	levelPattern   = regexp.MustCompile(`(\d+)(?:\s*%)?`)
	connectPattern = regexp.MustCompile(`(?i)\bconnect(?:\s+to)?\s+["']?([^"']+)["']?`)
)

// Extract returns the intent for text, or false when no rule matched.
// Categories are tried in a fixed order; a category whose keyword is present
// but whose sub-rules all miss falls through to the next one.
func Extract(text string) (domain.Intent, bool) {
	lower := strings.ToLower(text)

	if screensaverWords.in(lower) {
		if in, ok := screensaver(lower); ok {
			return in, true
		}
	}
	if volumeWords.in(lower) {
		if in, ok := volume(lower); ok {
			return in, true
		}
	}
	if brightnessWords.in(lower) {
		if in, ok := brightness(lower); ok {
			return in, true
		}
	}
	if wifiWords.in(lower) || connectPattern.MatchString(text) {
		if in, ok := wifi(lower, text); ok {
			return in, true
		}
	}

	return domain.Intent{}, false
}

func screensaver(text string) (domain.Intent, bool) {
	switch {
	case onWords.in(text):
		return intent(domain.CategoryScreensaver, domain.ActionTurnOn, ""), true
	case offWords.in(text):
		return intent(domain.CategoryScreensaver, domain.ActionTurnOff, ""), true
	case timeoutWords.in(text):
		if m := minutesPattern.FindStringSubmatch(text); m != nil {
			return intent(domain.CategoryScreensaver, domain.ActionSetTimeout, m[1]), true
		}
	}
	return domain.Intent{}, false
}

func volume(text string) (domain.Intent, bool) {
	switch {
	case louderWords.in(text):
		return intent(domain.CategoryVolume, domain.ActionIncrease, ""), true
	case quieterWords.in(text):
		return intent(domain.CategoryVolume, domain.ActionDecrease, ""), true
	case muteWords.in(text):
		return intent(domain.CategoryVolume, domain.ActionMute, ""), true
	case unmuteWords.in(text):
		return intent(domain.CategoryVolume, domain.ActionUnmute, ""), true
	case setWords.in(text) || strings.Contains(text, "%"):
		if m := levelPattern.FindStringSubmatch(text); m != nil {
			return intent(domain.CategoryVolume, domain.ActionSet, m[1]), true
		}
	}
	return domain.Intent{}, false
}

func brightness(text string) (domain.Intent, bool) {
	switch {
	case brighterWords.in(text):
		return intent(domain.CategoryBrightness, domain.ActionIncrease, ""), true
	case dimmerWords.in(text):
		return intent(domain.CategoryBrightness, domain.ActionDecrease, ""), true
	case setWords.in(text) || strings.Contains(text, "%"):
		if m := levelPattern.FindStringSubmatch(text); m != nil {
			return intent(domain.CategoryBrightness, domain.ActionSet, m[1]), true
		}
	}
	return domain.Intent{}, false
}

// wifi takes the original text as well so a captured SSID keeps its case.
// On and off are looked for outside the SSID, so "connect to Lights On"
// still connects.
func wifi(lower, original string) (domain.Intent, bool) {
	rest := lower
	var ssid string
	if m := connectPattern.FindStringSubmatchIndex(original); m != nil {
		ssid = strings.Trim(original[m[2]:m[3]], " \t\"'")
		rest = strings.ToLower(original[:m[0]] + original[m[1]:])
	}

	switch {
	case onWords.in(rest):
		return intent(domain.CategoryWifi, domain.ActionTurnOn, ""), true
	case offWords.in(rest):
		return intent(domain.CategoryWifi, domain.ActionTurnOff, ""), true
	case ssid != "":
		return intent(domain.CategoryWifi, domain.ActionConnect, ssid), true
	}
	return domain.Intent{}, false
}

func intent(c domain.Category, a domain.Action, param string) domain.Intent {
	return domain.Intent{Category: c, Action: a, Param: param}
}

// Parser adapts Extract to application.IntentParser.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(_ context.Context, text string) (*domain.Intent, error) {
	in, ok := Extract(text)
	if !ok {
		return &domain.Intent{Action: domain.ActionUnknown, RawText: text}, nil
	}
	in.RawText = text
	return &in, nil
}
