package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/RawatAr/travel-planner-ai/internal/pkg/exception"
	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
)

// MakeHandlerFunc serves ep over HTTP with the shared error encoder.
func MakeHandlerFunc(
	ep endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(ep, dec, enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

// DecodeRequest decodes a JSON body into T and runs its Bind validation.
// *T must implement render.Binder.
func DecodeRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	var req T

	binder, ok := any(&req).(render.Binder)
	if !ok {
		return nil, errors.New("request type does not implement render.Binder")
	}

	if err := render.Bind(r, binder); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, exception.BadRequest("invalid request body").WithCause(err)
	}

	return &req, nil
}
