package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/alerta-golpe/api-go/apperrors"
)

const MaxCommentLength = 1000

// ValidateCommentContent trims content and checks it holds 1..MaxCommentLength characters.
func ValidateCommentContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", apperrors.Validation("O comentário não pode estar vazio")
	}
	if utf8.RuneCountInString(trimmed) > MaxCommentLength {
		return "", apperrors.Validation("O comentário deve ter no máximo 1000 caracteres")
	}
	return trimmed, nil
}
