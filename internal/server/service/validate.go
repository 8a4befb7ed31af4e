package service

import (
	"regexp"

	serr "github.com/IvanChernomyrdin/go-car-market/internal/shared/errors"
)

// простая синтаксическая проверка email, без DNS и прочей магии
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(s string) bool {
	return emailRe.MatchString(s)
}

// validateListBounds проверяет общие границы пагинации.
// Значения вне диапазона — ошибка валидации, никакого молчаливого clamp.
func validateListBounds(ve *serr.ValidationError, offset, limit int) {
	if offset < 0 {
		ve.Add("offset", "must be greater than or equal to 0")
	}
	if limit < 1 || limit > MaxLimit {
		ve.Add("limit", "must be between 1 and 100")
	}
}
