package domain

import "errors"

var (
	ErrConfiguration       = errors.New("configuration error")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrNotFound            = errors.New("not found")
	ErrInvalidState        = errors.New("invalid state")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrDecryption          = errors.New("decryption failed")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidFeeRule      = errors.New("invalid fee rule")
)
