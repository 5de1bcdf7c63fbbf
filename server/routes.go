package server

import (
	"net/http"

	"github.com/MaxouZouzouAlou/RestoNowFront/handlers"
	"github.com/MaxouZouzouAlou/RestoNowFront/middlewares"
	"github.com/MaxouZouzouAlou/RestoNowFront/models"
	"github.com/MaxouZouzouAlou/RestoNowFront/utils"
	"github.com/go-chi/chi"
)

type Server struct {
	chi.Router
}

// SetupRoutes provides all the routes that can be used
func SetupRoutes(h *handlers.Handler) *Server {
	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		r.Use(middlewares.CommonMiddlewares()...)

		// health endpoint
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			utils.RespondJSON(w, 200, models.Response{Success: true})
		})

		r.Get("/state", h.GetState)
		r.Get("/places", h.GetPlaces)
		r.Put("/filters", h.UpdateFilters)
		r.Put("/category", h.SetCategory)
		r.Post("/favorites/{index}", h.ToggleFavorite)
	})
	return &Server{Router: router}
}

func (svc *Server) Run(port string) error {
	return http.ListenAndServe(port, svc)
}
