package create

import (
	"context"
	"log/slog"
	"net/http"

	"tutors-service/api"
	"tutors-service/pkg/response"
	"tutors-service/pkg/sl"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

type ConnectionRecorder interface {
	RecordConnection(ctx context.Context, userID int64) error
}

func New(log *slog.Logger, recorder ConnectionRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.connections.create.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req api.ConnectionRequest

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		if err := recorder.RecordConnection(r.Context(), req.UserID); err != nil {
			log.Error("Failed to record connection", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to record connection"))
			return
		}

		log.Info("Connection recorded", slog.Int64("user_id", req.UserID))

		w.WriteHeader(http.StatusCreated)
	}
}
