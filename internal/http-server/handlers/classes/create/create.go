package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"tutors-service/api"
	"tutors-service/pkg/response"
	"tutors-service/pkg/sl"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

type ClassRegistrar interface {
	RegisterClass(ctx context.Context, req *api.RegisterClassRequest) error
}

func New(log *slog.Logger, registrar ClassRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.classes.create.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req api.RegisterClassRequest

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		log.Info("Request body decoded", slog.String("subject", req.Subject), slog.Int("slots", len(req.Schedule)))

		if req.Name == "" {
			log.Error("name is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "name is required"))
			return
		}

		if req.Whatsapp == "" {
			log.Error("whatsapp is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "whatsapp is required"))
			return
		}

		if req.Subject == "" {
			log.Error("subject is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "subject is required"))
			return
		}

		if len(req.Schedule) == 0 {
			log.Error("schedule is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "schedule is required"))
			return
		}

		err := registrar.RegisterClass(r.Context(), &req)

		if errors.Is(err, response.ErrLocked) {
			log.Error("registration is locked for this contact handle")
			w.WriteHeader(http.StatusLocked)
			render.JSON(w, r, response.Error(string(response.LOCKED), "registration already in progress"))
			return
		}

		if err != nil {
			// The cause stays in the log; the caller gets the fixed message.
			log.Error("Failed to register class", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), response.MsgRegistrationFailed))
			return
		}

		log.Info("Class registered", slog.String("subject", req.Subject))

		w.WriteHeader(http.StatusCreated)
	}
}
