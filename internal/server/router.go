package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/itmaschool/attendance-admin/internal/config"
	"github.com/itmaschool/attendance-admin/internal/controller/botengine"
	"github.com/itmaschool/attendance-admin/internal/handlers"
	"github.com/itmaschool/attendance-admin/internal/notify"
	"github.com/itmaschool/attendance-admin/internal/repository"
)

// NewRouter собирает HTTP поверхность: вебхук бота и API школьного приложения
func NewRouter(
	cfg *config.Config,
	engine *botengine.Engine,
	accounts *repository.AccountRepository,
	absences *repository.AbsenceRepository,
	news *repository.NewsRepository,
	notifier notify.Notifier,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))

	// Фронтенд школы ходит с разных хостов, ограничений нет
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	webhook := handlers.NewWebhookHandler(engine, logger)
	auth := handlers.NewAuthHandler(accounts, logger)
	accountList := handlers.NewAccountsHandler(accounts, cfg.AdminKey, logger)
	absence := handlers.NewAbsenceHandler(absences, notifier, cfg.AllowedChatIDs(), logger)
	newsHandler := handlers.NewNewsHandler(news, logger)

	api := r.Group("/api")
	{
		api.POST("/bot", webhook.Handle)

		api.POST("/login", auth.Login)
		api.GET("/users", accountList.List)

		api.POST("/absent", absence.Create)
		api.GET("/absents", absence.List)
		api.PUT("/absent/:id", absence.Update)
		api.DELETE("/absent/:id", absence.Delete)

		api.GET("/latest-news", newsHandler.Latest)
	}

	return r
}
