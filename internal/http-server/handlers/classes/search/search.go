package search

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

type ClassSearcher interface {
	SearchClasses(ctx context.Context, query *api.SearchQuery) ([]*api.ClassResponse, error)
}

type Response struct {
	response.Response
	Classes []api.ClassResponse `json:"classes"`
}

func New(log *slog.Logger, searcher ClassSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.classes.search.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		query := &api.SearchQuery{
			WeekDay: r.URL.Query().Get("week_day"),
			Subject: r.URL.Query().Get("subject"),
			Time:    r.URL.Query().Get("time"),
		}

		if query.WeekDay == "" || query.Subject == "" || query.Time == "" {
			log.Error("Missing search filters")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.MISSING_FILTERS), response.MsgMissingFilters))
			return
		}

		classes, err := searcher.SearchClasses(r.Context(), query)

		if errors.Is(err, response.ErrMissingFilters) {
			log.Error("Missing search filters")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.MISSING_FILTERS), response.MsgMissingFilters))
			return
		}

		if errors.Is(err, response.ErrInvalidWeekDay) {
			log.Error("week_day is not a valid weekday")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "week_day must be an integer between 0 and 6"))
			return
		}

		if errors.Is(err, response.ErrInvalidTime) {
			log.Error("time is not a valid HH:MM string")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "time must be formatted as HH:MM"))
			return
		}

		if err != nil {
			log.Error("Failed to search classes", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to search classes"))
			return
		}

		log.Info("Classes retrieved", slog.Int("count", len(classes)))

		classesResponse := make([]api.ClassResponse, len(classes))
		for i, class := range classes {
			classesResponse[i] = *class
		}

		render.JSON(w, r, Response{
			Classes: classesResponse,
		})
	}
}
