package count

import (
	"context"
	"log/slog"
	"net/http"

	"tutors-service/pkg/response"
	"tutors-service/pkg/sl"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

type ConnectionCounter interface {
	CountConnections(ctx context.Context) (int64, error)
}

type Response struct {
	response.Response
	Total int64 `json:"total"`
}

func New(log *slog.Logger, counter ConnectionCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.connections.count.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		total, err := counter.CountConnections(r.Context())
		if err != nil {
			log.Error("Failed to count connections", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to count connections"))
			return
		}

		log.Info("Connections counted", slog.Int64("total", total))

		render.JSON(w, r, Response{
			Total: total,
		})
	}
}
