package routers

import (
	"log"

	"shilpgroup-io/backoffice/configs"
	"shilpgroup-io/backoffice/controllers"
	"shilpgroup-io/backoffice/internal/draft"
	"shilpgroup-io/backoffice/internal/middleware"
	"shilpgroup-io/backoffice/internal/staging"
	"shilpgroup-io/backoffice/services/upstream"

	"github.com/gin-gonic/gin"
)

// InitRoute wires the service: staging store, draft manager, upstream
// client and every route group.
func InitRoute() *gin.Engine {
	client := upstream.NewClient(configs.LoadEnvFor("UPSTREAM_API_URL"))

	stagingDir := configs.LoadEnvOr("STAGING_DIR", "./staging")
	files, err := staging.NewStore(stagingDir, newPreviewProvider(stagingDir))
	if err != nil {
		log.Fatal("Failed to init staging store:", err)
	}

	persist := draft.NewMongoPersister(configs.GetCollection(configs.DB, "wizard_drafts"))
	manager := draft.NewManager(files, persist)

	router := gin.Default()
	router.Use(middleware.CorsMiddleware())
	router.Static("/staging", stagingDir)

	api := router.Group("/v1", middleware.BackofficeRateLimiter())
	{
		setupAuthRoutes(api, client)
		wizardRoutes(api, manager, files, client)
		projectRoutes(api, client)
		bannerRoutes(api, client)
		blogRoutes(api, client)
		projectTreeRoutes(api, client)
	}

	return router
}

// newPreviewProvider picks Cloudinary-hosted previews when credentials
// are configured, otherwise serves previews from the staging directory.
func newPreviewProvider(stagingDir string) staging.PreviewProvider {
	cloudName := configs.LoadEnvOr("CLOUDINARY_CLOUD_NAME", "")
	if cloudName == "" {
		return &staging.LocalPreview{
			BaseURL: configs.LoadEnvOr("PUBLIC_BASE_URL", "http://localhost:8080"),
			Dir:     stagingDir,
		}
	}
	return &staging.CloudinaryPreview{
		CloudName: cloudName,
		APIKey:    configs.LoadEnvFor("CLOUDINARY_API_KEY"),
		APISecret: configs.LoadEnvFor("CLOUDINARY_API_SECRET"),
		Folder:    configs.LoadEnvOr("CLOUDINARY_PREVIEW_FOLDER", "backoffice-previews"),
	}
}

// setupAuthRoutes configures authentication endpoints.
func setupAuthRoutes(api *gin.RouterGroup, client *upstream.Client) {
	api.POST("/auth/login", controllers.Login(client))
	api.POST("/auth/forgot-password", controllers.ForgotPassword(client))

	secured := api.Group("/auth").Use(middleware.Auth())
	secured.POST("/verify", controllers.VerifySession(client))
	secured.DELETE("/logout", controllers.Logout())
	secured.GET("/profile", controllers.Profile(client))
}

// wizardRoutes configures the project creation wizard.
func wizardRoutes(api *gin.RouterGroup, manager *draft.Manager, files *staging.Store, client *upstream.Client) {
	wizard := api.Group("/wizard").Use(middleware.Auth())

	wizard.GET("", controllers.GetWizard(manager))
	wizard.DELETE("", controllers.ResetWizard(manager))

	wizard.PUT("/fields/:field", controllers.SetWizardField(manager))
	wizard.PUT("/slots/:slot", controllers.StageWizardFile(manager, files))
	wizard.DELETE("/slots/:slot", controllers.ClearWizardSlot(manager))

	wizard.POST("/collections/:collection/items", controllers.AddWizardItem(manager))
	wizard.PUT("/collections/:collection/items/:id", controllers.SetWizardItemField(manager))
	wizard.DELETE("/collections/:collection/items/:id", controllers.RemoveWizardItem(manager))

	wizard.POST("/next", controllers.WizardNext(manager))
	wizard.POST("/prev", controllers.WizardPrev(manager))
	wizard.POST("/jump/:section", controllers.WizardJump(manager))

	wizard.POST("/submit", controllers.SubmitWizard(manager, files, client))
}

func projectRoutes(api *gin.RouterGroup, client *upstream.Client) {
	projects := api.Group("/projects").Use(middleware.Auth())

	projects.GET("", controllers.ListProjects(client))
	projects.GET("/:id", controllers.GetProject(client))
	projects.DELETE("/:id", controllers.DeleteProject(client))
	projects.PATCH("/:id/toggle-status", controllers.ToggleProjectStatus(client))
}

func bannerRoutes(api *gin.RouterGroup, client *upstream.Client) {
	banners := api.Group("/banners").Use(middleware.Auth())

	banners.GET("", controllers.GetBanners(client))
	banners.POST("/:section/:field", controllers.UpdateBannerImage(client))
	banners.PUT("/:section/alt", controllers.UpdateBannerAlt(client))
}

func blogRoutes(api *gin.RouterGroup, client *upstream.Client) {
	blogs := api.Group("/blogs").Use(middleware.Auth())

	blogs.GET("", controllers.ListBlogs(client))
	blogs.GET("/:id", controllers.GetBlog(client))
	blogs.POST("", controllers.CreateBlog(client))
	blogs.PUT("/:id", controllers.UpdateBlog(client))
	blogs.DELETE("/:id", controllers.DeleteBlog(client))
}

func projectTreeRoutes(api *gin.RouterGroup, client *upstream.Client) {
	tree := api.Group("/projecttree").Use(middleware.Auth())

	tree.GET("", controllers.ListProjectTree(client))
	tree.GET("/statistics", controllers.GetProjectTreeStatistics(client))
	tree.GET("/:id", controllers.GetProjectTree(client))
	tree.POST("", controllers.CreateProjectTree(client))
	tree.PUT("/:id", controllers.UpdateProjectTree(client))
	tree.DELETE("/:id", controllers.DeleteProjectTree(client))
}
