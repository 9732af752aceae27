//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"pixgram/internal/config"
	"pixgram/internal/dbmongo"
	"pixgram/internal/interaction"
	"pixgram/internal/media"
	"pixgram/internal/post"
	"pixgram/internal/user"
)

// InitializeApp wires repositories, services and handlers. wire generates
// the real body in wire_gen.go.
func InitializeApp(db *gorm.DB, mongoClient *dbmongo.MongoClient, cfg *config.Config) *App {
	wire.Build(
		dbmongo.NewImageStorage,
		NewProcessor,
		media.NewUploader,
		media.NewHTTPServer,

		user.NewUserRepository,
		user.NewFollowRepository,
		user.NewUserService,
		user.NewHandler,

		post.NewPostRepository,
		post.NewPostService,
		post.NewHandler,

		interaction.NewInteractionRepository,
		interaction.NewInteractionService,
		interaction.NewHandler,

		wire.Struct(new(App), "*"),
	)
	return &App{}
}
