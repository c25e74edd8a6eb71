package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	AdminUC    *usecase.AdminUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	FileUC     *usecase.FileUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Registro de usuarios (público)
	userHandler := NewUserHandler(deps.UserUC)
	api.Post("/users", userHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil propio (protegido). /me antes de /:username para que la ruta
	// literal gane.
	users := protected.Group("/users")
	users.Get("/me", userHandler.GetMyInfo)
	users.Put("/me", userHandler.UpdateMyInfo)
	users.Delete("/me", userHandler.DisableMyAccount)
	users.Put("/me/password", userHandler.ChangeMyPassword)
	users.Put("/me/avatar", userHandler.SetMyAvatar)
	users.Get("/:username", userHandler.GetByUsername)

	// Categories (protegido; mutaciones solo ADMIN o MANAGER)
	mutator := RequireRole(entity.RoleAdmin, entity.RoleManager)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.Search)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", mutator, categoryHandler.Create)
	categories.Put("/:id", mutator, categoryHandler.Update)
	categories.Put("/:id/thumbnail", mutator, categoryHandler.SetThumbnail)
	categories.Delete("/:id", mutator, categoryHandler.Delete)

	// Products (protegido; mutaciones solo ADMIN o MANAGER)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", mutator, productHandler.Create)
	products.Put("/:id", mutator, productHandler.Update)
	products.Delete("/:id", mutator, productHandler.Delete)

	// Files (protegido)
	files := protected.Group("/files")
	fileHandler := NewFileHandler(deps.FileUC)
	files.Post("/", fileHandler.Upload)
	files.Get("/", fileHandler.ListMine)
	files.Get("/:name", fileHandler.Download)

	// Administración de usuarios (solo ADMIN)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin.Get("/users", adminHandler.Search)
	admin.Get("/users/:id", adminHandler.GetByID)
	admin.Put("/users/:id/role", adminHandler.UpdateRole)
	admin.Put("/users/:id/enabled", adminHandler.SetEnabled)
}
