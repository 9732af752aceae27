package main

import (
	"net"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"pixgram/internal/common"
	"pixgram/internal/config"
	"pixgram/internal/dbmongo"
	"pixgram/internal/media"
)

// Standalone image server, for deployments where media traffic is split
// off from the API.
func main() {
	if err := godotenv.Load(); err != nil {
		common.Log.Info(".env file not found, using system env variables")
	}

	cfg := config.Load()
	common.InitLogger(&cfg.Logging, cfg.Server.Environment)

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		common.Log.WithError(err).Fatal("failed to initialize MongoDB")
	}

	storage := dbmongo.NewImageStorage(mongoClient)
	server := media.NewHTTPServer(storage)

	port := os.Getenv("MEDIA_SERVER_PORT")
	if port == "" {
		port = "8081"
	}

	addr := net.JoinHostPort(cfg.Server.Host, port)
	common.Log.WithField("addr", addr).Info("media server listening")
	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		common.Log.WithError(err).Fatal("server stopped")
	}
}
