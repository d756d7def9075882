package service

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrZoneNotFound       = errors.New("hazard zone not found")
	ErrIncidentNotFound   = errors.New("incident not found")
	ErrNoImage            = errors.New("no image loaded")
	ErrUnsupportedImage   = errors.New("unsupported image type")
	ErrAnalysisInProgress = errors.New("analysis already in progress")
	// ErrSuperseded - результат пришел после того, как пользователь сменил или убрал изображение
	ErrSuperseded = errors.New("request superseded by a newer one")
)

var (
	ErrInvalidTab      = errors.New("unknown tab")
	ErrUnknownLanguage = errors.New("unsupported language")
)
