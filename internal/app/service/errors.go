package service

import (
	"net/http"

	"github.com/RawatAr/travel-planner-ai/internal/pkg/exception"
)

var ErrItineraryUnavailable = exception.ApplicationError{
	Message:    "travel plan could not be generated",
	StatusCode: http.StatusBadGateway,
}

var ErrRenderDocument = exception.ApplicationError{
	Message:    "failed to render travel plan document",
	StatusCode: http.StatusInternalServerError,
}
