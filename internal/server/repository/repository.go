// Package repository реализует доступ к хранилищу (PostgreSQL).
//
// Репозитории отвечают исключительно за SQL и маппинг ошибок БД в доменные
// ошибки, без бизнес-логики. Каждая мутация с проверкой уникальности
// выполняется в одной транзакции: существование конкурирующего значения
// проверяется тем же соединением, которым делается запись. Гонку двух
// параллельных транзакций с одинаковым значением добивает уникальный
// индекс в схеме: ошибка 23505 маппится в тот же доменный конфликт.
package repository

import (
	"errors"

	"github.com/jackc/pgconn"
)

// Коды ошибок PostgreSQL, которые мы различаем.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// pgErrCode достаёт SQLSTATE из ошибки драйвера.
// Возвращает пустую строку, если это не ошибка PostgreSQL.
func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// pgConstraint возвращает имя нарушенного ограничения (для 23505/23503).
func pgConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
