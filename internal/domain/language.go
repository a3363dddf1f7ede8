// Package domain contains entity without logic, just meta-data
package domain

import "errors"

type Language string

const (
	English Language = "en"
	Bengali Language = "bn"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

var languageNames = map[Language]string{
	English: "English",
	Bengali: "Bengali",
}

// Name returns the display name used in system notices.
func (l Language) Name() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return "Unknown"
}

func (l Language) Supported() bool {
	_, ok := languageNames[l]
	return ok
}

func ParseLanguage(code string) (Language, error) {
	l := Language(code)
	if !l.Supported() {
		return "", ErrUnsupportedLanguage
	}
	return l, nil
}
