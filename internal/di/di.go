package di

import (
	"pixgram/internal/config"
	"pixgram/internal/interaction"
	"pixgram/internal/media"
	"pixgram/internal/post"
	"pixgram/internal/user"
)

// App bundles everything the API server mounts.
type App struct {
	UserHandler        *user.Handler
	PostHandler        *post.Handler
	InteractionHandler *interaction.Handler
	MediaServer        *media.HTTPServer
}

func NewProcessor(cfg *config.Config) *media.Processor {
	return media.NewProcessor(cfg.Media.ImageSize, cfg.Media.ThumbnailSize, cfg.Media.MaxUploadBytes)
}
