package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

type ErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
	Redirect    string `json:"redirect,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	resp := ErrorResponse{Message: msgToSend}

	if originErr != nil {
		resp.Description = originErr.Error()
	}

	slog.ErrorContext(ctx, "api error", "code", code, "error", resp.Description)
	SendJSON(ctx, w, code, resp)
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// sendServiceErr maps service errors to a status code and a user facing message.
func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid request")
	case errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Session expired, please sign in again")
	case errors.Is(err, entity.ErrBelowMinimum):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Amount is below the payable minimum")
	case errors.Is(err, entity.ErrResolution):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Payment method is not available")
	case errors.Is(err, entity.ErrPaymentRequest):
		SendJSONErr(ctx, w, http.StatusBadGateway, err, "Payment could not be created")
	case errors.Is(err, entity.ErrPollCycle):
		SendJSONErr(ctx, w, http.StatusServiceUnavailable, err, "Payment status is temporarily unavailable")
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Not found")
	case errors.Is(err, entity.ErrNotReady):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Download is not ready yet")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Internal error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: decode body: %w", entity.ErrInvalidArgument, err)
	}

	return nil
}

func writeEvent(w io.Writer, event string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, b)

	return err
}
