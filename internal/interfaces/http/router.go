package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/filamentario-api/internal/application/auth"
	"github.com/jcamargo/filamentario-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SpoolUC   *usecase.SpoolUseCase
	BatchUC   *usecase.BatchUseCase
	BulkUC    *usecase.ImportExportUseCase
	ReportUC  *usecase.ReportUseCase
	CatalogUC *usecase.CatalogUseCase
	SharingUC *usecase.SharingUseCase
	PublicUC  *usecase.PublicUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Segmentos plurales de los catálogos en la ruta.
var catalogSegments = []string{"manufacturers", "materials", "colors", "diameters", "locations"}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Vista pública (sin token)
	publicHandler := NewPublicHandler(deps.PublicUC)
	api.Get("/public/spools/:ownerId", publicHandler.View)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Spools (protegido). Las rutas literales van antes que /:id.
	spools := protected.Group("/spools")
	spoolHandler := NewSpoolHandler(deps.SpoolUC, deps.BatchUC, deps.BulkUC, deps.ReportUC)
	spools.Get("/report", spoolHandler.Report)
	spools.Patch("/batch", spoolHandler.BatchUpdate)
	spools.Delete("/batch", spoolHandler.BatchDelete)
	spools.Get("/", spoolHandler.List)
	spools.Post("/", spoolHandler.Create)
	spools.Get("/:id", spoolHandler.GetByID)
	spools.Put("/:id", spoolHandler.Update)
	spools.Delete("/:id", spoolHandler.Delete)

	// Catálogos compartidos (protegido): un grupo por kind.
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	for _, seg := range catalogSegments {
		g := protected.Group("/" + seg)
		g.Get("/", catalogHandler.List)
		g.Post("/", catalogHandler.Create)
		g.Put("/:id", catalogHandler.Update)
		g.Delete("/:id", catalogHandler.Delete)
	}

	// Reglas de compartición (protegido)
	sharingHandler := NewSharingHandler(deps.SharingUC)
	protected.Get("/sharing", sharingHandler.Get)
	protected.Put("/sharing", sharingHandler.Put)
}
