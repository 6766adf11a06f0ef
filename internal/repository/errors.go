package repository

import "errors"

// DBエラーはここの型に寄せてからusecaseへ返す
var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicate   = errors.New("duplicate key")
	ErrForeignKey  = errors.New("foreign key violation")
	ErrConstraint  = errors.New("constraint violation")
	ErrInvalidData = errors.New("invalid data")
)
