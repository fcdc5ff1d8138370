package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/marsestates/brokerage-api/docs"
	"github.com/marsestates/brokerage-api/internal/config"
	"github.com/marsestates/brokerage-api/internal/middleware"
	"github.com/marsestates/brokerage-api/internal/modules/handler"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config              *config.Config
	Log                 *zap.Logger
	AuthHandler         *handler.AuthHandler
	ProjectHandler      *handler.ProjectHandler
	ProjectImageHandler *handler.ProjectImageHandler
	UnitHandler         *handler.UnitHandler
	LeadHandler         *handler.LeadHandler
	SettingsHandler     *handler.SettingsHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := middleware.AdminAuth(d.Config)

	api := r.Group("/api")
	{
		api.POST("/auth/login", d.AuthHandler.Login)

		projects := api.Group("/projects")
		{
			projects.GET("", d.ProjectHandler.ListProjects)
			projects.POST("", auth, d.ProjectHandler.CreateProject)
			projects.GET("/:id", d.ProjectHandler.GetProject)
			projects.PUT("/:id", auth, d.ProjectHandler.UpdateProject)
			projects.DELETE("/:id", auth, d.ProjectHandler.DeleteProject)

			projects.GET("/:id/images", d.ProjectImageHandler.ListProjectImages)
			projects.POST("/:id/images", auth, d.ProjectImageHandler.CreateProjectImage)
			projects.DELETE("/:id/images", auth, d.ProjectImageHandler.ClearProjectImages)
		}
		api.DELETE("/project-images/:id", auth, d.ProjectImageHandler.DeleteProjectImage)

		units := api.Group("/units")
		{
			units.GET("", d.UnitHandler.ListUnits)
			units.POST("", auth, d.UnitHandler.CreateUnit)
			units.GET("/code/:unitCode", d.UnitHandler.GetUnitByCode)
			units.GET("/:id", d.UnitHandler.GetUnit)
			units.PUT("/:id", auth, d.UnitHandler.UpdateUnit)
			units.DELETE("/:id", auth, d.UnitHandler.DeleteUnit)
		}

		leads := api.Group("/leads")
		{
			leads.GET("", auth, d.LeadHandler.ListLeads)
			leads.POST("", d.LeadHandler.CreateLead)
			leads.DELETE("/:id", auth, d.LeadHandler.DeleteLead)
		}

		api.GET("/settings", d.SettingsHandler.GetSettings)
		api.PUT("/settings", auth, d.SettingsHandler.UpdateSettings)
	}

	return r
}
