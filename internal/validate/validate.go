package validate

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrEmptyText is returned when text is blank after trimming
var ErrEmptyText = errors.New("text must not be empty")

// ErrTextTooLong is returned when text exceeds its length limit
var ErrTextTooLong = errors.New("text exceeds maximum length")

// Text trims surrounding whitespace and rejects blank input. Every post
// and comment body passes through here on create and update.
func Text(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyText
	}
	return trimmed, nil
}

// TextMax validates like Text and additionally rejects input longer
// than max characters. The limit counts characters, not bytes, so
// multibyte text is measured the way users see it.
func TextMax(text string, max int) (string, error) {
	trimmed, err := Text(text)
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(trimmed) > max {
		return "", ErrTextTooLong
	}
	return trimmed, nil
}
