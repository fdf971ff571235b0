package utils

import "errors"

var (
	ErrorInvalidConfig = errors.New("invalid pricing config")
	ErrorUnknownSheet  = errors.New("sheet not found in workbook")
)
