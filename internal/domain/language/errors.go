package language

import "errors"

var (
	ErrInvalidFluency  = errors.New("invalid fluency level")
	ErrUnknownLanguage = errors.New("unknown language code")
)
