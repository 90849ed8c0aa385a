package service

import "errors"

var (
	ErrInvalidAmount   = errors.New("amount must be an integer of at least 100")
	ErrInvalidCurrency = errors.New("currency must be a 3-letter code")
	ErrInvalidVPA      = errors.New("VPA format invalid")
	ErrInvalidCard     = errors.New("card validation failed")
	ErrExpiredCard     = errors.New("card expiry date invalid")
	ErrInvalidMethod   = errors.New("invalid payment method")
	ErrOrderNotFound   = errors.New("order not found")
	ErrPaymentNotFound = errors.New("payment not found")
)
