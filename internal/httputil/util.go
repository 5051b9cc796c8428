package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-sod/knn/internal/logging"
	"github.com/go-sod/knn/internal/predictor/errs"
)

const maxBodyBytes = 64 * 1024 * 1024

// DecodeJSONBody checks method and content type and decodes the body into v.
// On failure the response is already written and false is returned.
func DecodeJSONBody(ctx context.Context, w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if r.Method != http.MethodPost {
		respError(ctx, w, http.StatusMethodNotAllowed, fmt.Sprintf("method %s is not allowed", r.Method))
		return false
	}
	if t := r.Header.Get("content-type"); !strings.HasPrefix(t, "application/json") {
		respError(ctx, w, http.StatusUnsupportedMediaType, "content-type is not application/json")
		return false
	}
	defer r.Body.Close()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(v); err != nil {
		DecodeErr(ctx, w, err)
		return false
	}
	return true
}

// DecodeErr answers a failed body decode: 413 for oversized bodies, 400 for bad json,
// 500 for anything the decoder does not explain.
func DecodeErr(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		syntaxErr      *json.SyntaxError
		unmarshalError *json.UnmarshalTypeError
		maxBytesErr    *http.MaxBytesError
	)
	switch {
	case errors.As(err, &maxBytesErr):
		respError(ctx, w, http.StatusRequestEntityTooLarge, fmt.Sprintf("body exceeds %d bytes", maxBytesErr.Limit))
	case errors.As(err, &syntaxErr):
		respError(ctx, w, http.StatusBadRequest, fmt.Sprintf("malformed json at offset %d", syntaxErr.Offset))
	case errors.As(err, &unmarshalError):
		respError(ctx, w, http.StatusBadRequest, fmt.Sprintf("field %q must be %s", unmarshalError.Field, unmarshalError.Type))
	case errors.Is(err, io.ErrUnexpectedEOF):
		respError(ctx, w, http.StatusBadRequest, "malformed json")
	case errors.Is(err, io.EOF):
		respError(ctx, w, http.StatusBadRequest, "body must not be empty")
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		respError(ctx, w, http.StatusBadRequest, "unknown field "+strings.TrimPrefix(err.Error(), "json: unknown field "))
	default:
		respError(ctx, w, http.StatusInternalServerError, fmt.Sprintf("failed to decode json: %v", err))
	}
}

// RespPredictErr answers 400 for input errors of the predictor, 503 for requests cut by
// their deadline and 500 for anything else.
func RespPredictErr(ctx context.Context, w http.ResponseWriter, err error) {
	respError(ctx, w, predictErrStatus(err), err.Error())
}

func predictErrStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidK),
		errors.Is(err, errs.ErrEmptyDataset),
		errors.Is(err, errs.ErrLengthMismatch),
		errors.Is(err, errs.ErrMalformedPoint):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func RespJSON(ctx context.Context, w http.ResponseWriter, v interface{}) {
	bytes, err := json.Marshal(v)
	if err != nil {
		respError(ctx, w, http.StatusInternalServerError, fmt.Sprintf("failed to encode output json: %v", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(bytes)
}

func RespBadRequest(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	respError(ctx, w, http.StatusBadRequest, fmt.Sprintf(format, args...))
}

type errorBody struct {
	Error string `json:"error"`
}

// respError writes {"error": msg}. Client errors log at debug, server errors at error,
// and internal details are not sent back.
func respError(ctx context.Context, w http.ResponseWriter, code int, msg string) {
	logger := logging.FromContext(ctx).With("status", code)
	body := errorBody{Error: msg}
	if code >= http.StatusInternalServerError && code != http.StatusServiceUnavailable {
		logger.Error(msg)
		body.Error = http.StatusText(code)
	} else {
		logger.Debug(msg)
	}
	bytes, _ := json.Marshal(body)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(bytes)
}
