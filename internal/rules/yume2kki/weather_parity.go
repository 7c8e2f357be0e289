package yume2kki

import (
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// weatherVariable mirrors the current weather for the rest of the game.
const weatherVariable = 42

type parityState int

const (
	parityNormal parityState = iota
	parityExpectingVariable
	parityExpectingWeather
	parityFinished
)

// WeatherParityRule requires every page that changes the weather to also
// update V0042, and the other way round.
type WeatherParityRule struct{}

// NewWeatherParityRule creates a new weather-parity rule instance.
func NewWeatherParityRule() *WeatherParityRule {
	return &WeatherParityRule{}
}

// Metadata returns the rule metadata.
func (r *WeatherParityRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:             rules.Yume2kkiRulePrefix + "weather-parity",
		Name:             "Parity between weather and V0042",
		Description:      "A page that changes the weather must also set V0042, and vice versa",
		DefaultLevel:     rules.LevelError,
		Category:         "consistency",
		EnabledByDefault: true,
	}
}

// Check runs the weather-parity rule. Parity is tracked per page.
func (r *WeatherParityRule) Check(input rules.LintInput) []rules.Diagnostic {
	var diags []rules.Diagnostic

	for ei := range input.Document.Events {
		ev := &input.Document.Events[ei]
		for pi := range ev.Pages {
			state := parityNormal
			for ci := range ev.Pages[pi].Commands {
				state = state.next(&ev.Pages[pi].Commands[ci])
			}

			switch state {
			case parityExpectingVariable:
				diags = append(diags, rules.Error(rules.PageLocation(ev, pi),
					"V0042 is not changed after changing the weather."))
			case parityExpectingWeather:
				diags = append(diags, rules.Error(rules.PageLocation(ev, pi),
					"The weather is not changed after changing V0042."))
			case parityNormal, parityFinished:
			}
		}
	}

	return diags
}

func (s parityState) next(cmd *lcf.Command) parityState {
	switch {
	case cmd.Code == lcf.OpWeatherEffects:
		switch s {
		case parityNormal:
			return parityExpectingVariable
		case parityExpectingWeather:
			return parityFinished
		case parityExpectingVariable, parityFinished:
		}
	case cmd.TouchesVariable(weatherVariable):
		switch s {
		case parityNormal:
			return parityExpectingWeather
		case parityExpectingVariable:
			return parityFinished
		case parityExpectingWeather, parityFinished:
		}
	}
	return s
}
