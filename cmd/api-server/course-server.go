package main

import (
	"log"
	"net/http"

	"achieveit/db"
	"achieveit/db/migrations"
	"achieveit/internal/auth"
	"achieveit/internal/config"
	"achieveit/internal/handlers"
	"achieveit/internal/metrics"
	appmw "achieveit/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	dbConn, err := sqlx.Connect("postgres", cfg.PostgresConn)
	if err != nil {
		log.Fatalf("Cannot connect to DB: %v", err)
	}
	defer dbConn.Close()

	migrations.Run(cfg.PostgresConn)

	store := db.NewStorage(dbConn)
	tokens := auth.NewTokenService(cfg.JWTSecret)
	collector := metrics.NewCollector()
	h := handlers.NewHandler(store, tokens, collector, cfg.Production())

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(appmw.CORS(cfg.CORSAllowedOrigin))
	r.Use(collector.Middleware)

	r.Get("/", h.RootHandler)
	r.Get("/ping", h.PingHandler)
	r.Method(http.MethodGet, "/metrics", collector.Handler())

	// идентичность
	r.Post("/jwt-access", h.JWTAccessHandler)
	r.Post("/log-out", h.LogOutHandler)

	// курсы
	r.Get("/courses", h.GetCoursesHandler)
	r.Get("/course/{id}", h.GetCourseHandler)
	r.Get("/all-courses", h.SearchCoursesHandler)
	r.Post("/add-course", h.CreateCourseHandler)
	r.Delete("/course/{id}", h.DeleteCourseHandler)
	r.Put("/update-course/{id}", h.UpdateCourseHandler)

	// предложения
	r.Post("/add-bid", h.CreateBidHandler)
	r.Patch("/bid-status/{id}", h.UpdateBidStatusHandler)

	// маршруты за шлюзом аутентификации
	r.Group(func(r chi.Router) {
		r.Use(auth.VerifyToken(tokens))
		r.Get("/courses/{email}", h.GetPosterCoursesHandler)
		r.Get("/bids", h.GetPosterBidsHandler)
		r.Get("/my-bids/{email}", h.GetMyBidsHandler)
	})

	log.Printf("Starting server on %s", cfg.ServerAddress)
	log.Fatal(http.ListenAndServe(cfg.ServerAddress, r))
}
