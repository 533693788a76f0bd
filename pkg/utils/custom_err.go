package utils

import "errors"

var (
	ErrDatabaseError          = errors.New("database error")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrSessionRevoked         = errors.New("session revoked")
	ErrAccountNotFound        = errors.New("account not found")
	ErrEmailAlreadyExists     = errors.New("email already exists")
	ErrRewardNotFound         = errors.New("reward not found")
	ErrTrashBinNotFound       = errors.New("trash bin not found")
	ErrCannotDeleteSuperAdmin = errors.New("super admin cannot be deleted")
	ErrCannotDeleteSelf       = errors.New("cannot delete own account")
	ErrInvalidLimit           = errors.New("invalid limit parameter")
)
