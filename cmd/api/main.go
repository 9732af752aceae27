package main

import (
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"pixgram/internal/common"
	"pixgram/internal/config"
	"pixgram/internal/dbmongo"
	"pixgram/internal/dbmysql"
	"pixgram/internal/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		common.Log.Info(".env file not found, using system env variables")
	}

	cfg := config.Load()
	common.InitLogger(&cfg.Logging, cfg.Server.Environment)

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		common.Log.WithError(err).Fatal("failed to initialize MySQL")
	}
	common.Log.Info("connected to MySQL")

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		common.Log.WithError(err).Fatal("failed to initialize MongoDB")
	}
	common.Log.Info("connected to MongoDB")

	app := di.InitializeApp(db, mongoClient, cfg)

	router := mux.NewRouter()
	router.Use(common.RequestLogger)

	// read endpoints personalize when a valid token is present, mutating
	// endpoints require one
	api := router.PathPrefix("/api").Subrouter()
	public := api.NewRoute().Subrouter()
	public.Use(common.OptionalAuth)
	protected := api.NewRoute().Subrouter()
	protected.Use(common.RequireAuth)

	app.UserHandler.RegisterRoutes(public, protected)
	app.PostHandler.RegisterRoutes(public, protected)
	app.InteractionHandler.RegisterRoutes(public, protected)

	router.HandleFunc("/media/{fileId}", app.MediaServer.ServeFile).Methods("GET")

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	common.Log.WithField("addr", addr).Info("API server listening")
	if err := server.ListenAndServe(); err != nil {
		common.Log.WithError(err).Fatal("server stopped")
	}
}
