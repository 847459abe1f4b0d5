package pg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

type ErrorClassification int

const (
	NonRetriable ErrorClassification = iota
	Retriable

	ErrIsExistCode    = "23505"
	ErrForeignKeyCode = "23503"
)

type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetriable
	}

	// pgx (stdlib поверх pgxpool) отдает *pgconn.PgError, lib/pq - *pq.Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyCode(pgErr.Code)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifyCode(string(pqErr.Code))
	}

	// По умолчанию считаем ошибку неповторяемой
	return NonRetriable
}

func classifyCode(code string) ErrorClassification {
	// Коды ошибок PostgreSQL: https://www.postgresql.org/docs/current/errcodes-appendix.html

	switch code {
	// Класс 08 - Ошибки соединения
	case "08000", "08001", "08003", "08004", "08006", "08007":
		return Retriable

	// Класс 40 - Откат транзакции
	case "40000", "40001", "40P01":
		return Retriable

	// Класс 57 - Ошибка оператора
	case "57P03":
		return Retriable
	}

	// Класс 22 - Ошибки данных
	switch code {
	case "22000", "22004":
		return NonRetriable
	}

	// Класс 23 - Нарушение ограничений целостности
	switch code {
	case "23000", "23001", "23502", ErrForeignKeyCode, ErrIsExistCode, "23514":
		return NonRetriable
	}

	// Класс 42 - Синтаксические ошибки
	switch code {
	case "42601", "42P01", "42703", "42P02", "42P03":
		return NonRetriable
	}

	// По умолчанию считаем ошибку неповторяемой
	return NonRetriable
}
