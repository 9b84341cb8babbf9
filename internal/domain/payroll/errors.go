package payroll

import "errors"

var (
	ErrInvalidEmployeeID = errors.New("employee id must be a positive integer")
	ErrInvalidPeriod     = errors.New("invalid pay period")
	ErrEmployeeNotFound  = errors.New("employee not found")
)
