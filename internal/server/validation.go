package server

import (
	"errors"
	"fmt"
	"strings"
)

const (
	maxNameLength     = 20
	maxGameNameLength = 40
	maxTeamNameLength = 24
	maxWordLength     = 64
)

func validateName(name string) (string, error) {
	return validateText("name", name, maxNameLength)
}

func validateGameName(name string) (string, error) {
	return validateText("game name", name, maxGameNameLength)
}

func validateTeamName(name string) (string, error) {
	return validateText("team name", name, maxTeamNameLength)
}

func validateWord(text string) (string, error) {
	trimmed := normalizeText(text)
	if trimmed == "" {
		return "", errors.New("word is required")
	}
	if len(trimmed) > maxWordLength {
		return "", fmt.Errorf("word must be %d characters or fewer", maxWordLength)
	}
	if !isSafeText(trimmed) {
		return "", errors.New("word contains unsupported characters")
	}
	return strings.ToLower(trimmed), nil
}

func validateText(label, text string, maxLen int) (string, error) {
	trimmed := normalizeText(text)
	if trimmed == "" {
		return "", fmt.Errorf("%s is required", label)
	}
	if len(trimmed) > maxLen {
		return "", fmt.Errorf("%s must be %d characters or fewer", label, maxLen)
	}
	if !isSafeText(trimmed) {
		return "", fmt.Errorf("%s contains unsupported characters", label)
	}
	return trimmed, nil
}

func normalizeText(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	return strings.Join(fields, " ")
}

func isSafeText(text string) bool {
	for _, r := range text {
		if r > 127 {
			return false
		}
		if r >= 'a' && r <= 'z' {
			continue
		}
		if r >= 'A' && r <= 'Z' {
			continue
		}
		if r >= '0' && r <= '9' {
			continue
		}
		switch r {
		case ' ', '-', '_', '\'', '"', '.', ',', '!', '?', ':', ';', '&', '(', ')', '/':
			continue
		default:
			return false
		}
	}
	return true
}
