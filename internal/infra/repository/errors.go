package repository

import (
	"errors"
	"fmt"
	"strings"

	repo "shop/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// gorm/pgのエラーをrepositoryのエラーに寄せる。
// SQLSTATE: 23505 unique, 23503 fk, 23502 not null, 23514 check, 22xxx data
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", repo.ErrDuplicate, err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", repo.ErrForeignKey, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case pgErr.Code == "23505":
		return fmt.Errorf("%w: %s", repo.ErrDuplicate, pgMessage(pgErr))
	case pgErr.Code == "23503":
		return fmt.Errorf("%w: %s", repo.ErrForeignKey, pgMessage(pgErr))
	case pgErr.Code == "23502", pgErr.Code == "23514":
		return fmt.Errorf("%w: %s", repo.ErrConstraint, pgMessage(pgErr))
	case strings.HasPrefix(pgErr.Code, "22"):
		return fmt.Errorf("%w: %s", repo.ErrInvalidData, pgMessage(pgErr))
	}
	return err
}

func pgMessage(e *pgconn.PgError) string {
	if e.Detail != "" {
		return e.Message + " (" + e.Detail + ")"
	}
	return e.Message
}
