package route

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"cafeapi/config"
	"cafeapi/controller"
	"cafeapi/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templates embed.FS

// NewRouter builds the engine with middleware, the home page and the cafe routes.
func NewRouter(cfg *config.Config, cafes *controller.CafeController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), utils.JSONRecovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.SetHTMLTemplate(template.Must(template.ParseFS(templates, "templates/*.html")))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	CafeRoutes(router, cafes)
	router.NoRoute(utils.NotFound())

	return router
}

// CafeRoutes registers the home page and the cafe endpoints.
func CafeRoutes(router *gin.Engine, cafes *controller.CafeController) {
	router.GET("/", cafes.Home)
	router.GET("/random", cafes.Random)
	router.GET("/all", cafes.All)
	router.GET("/search", cafes.Search)
	router.POST("/add", cafes.Add)
	router.PATCH("/update-price", cafes.Update)
}
