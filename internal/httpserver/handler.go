package httpserver

import (
	"context"

	"taskboard/internal/model"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		gin.Recovery(),
		srv.mw.RequestID(),
		srv.mw.AccessLog(),
		srv.mw.CORS(),
		srv.mw.RateLimit(),
	)

	ctx := context.Background()
	if model.Environment(srv.environment) == model.EnvironmentProduction && srv.mw.AllowsAnyOrigin() {
		srv.l.Warn(ctx, "CORS allows every origin in production")
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	api.GET("/ping", srv.ping)

	if err := srv.setupTaskDomain(ctx, api); err != nil {
		return err
	}

	return nil
}
