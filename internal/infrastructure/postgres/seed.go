package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// Seed garantiza los datos mínimos del despliegue: el usuario admin y la
// categoría centinela "Sin categoría". El borrado de categorías depende de
// que la centinela exista; sembrarla aquí es lo que sostiene ese invariante.
func Seed(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	users := NewUserRepository(pool)
	categories := NewCategoryRepository(pool)

	admin, err := users.FindByUsername("admin")
	if err != nil {
		return fmt.Errorf("buscar usuario admin: %w", err)
	}
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash de contraseña admin: %w", err)
		}
		now := time.Now()
		admin = &entity.User{
			ID:           uuid.New().String(),
			Username:     "admin",
			PasswordHash: string(hash),
			Email:        "admin@tienda.local",
			Role:         entity.RoleAdmin,
			Enabled:      true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := users.Create(admin); err != nil {
			return fmt.Errorf("crear usuario admin: %w", err)
		}
		log.Warn().Msg("usuario admin creado con contraseña por defecto 'admin', cámbiela")
	}

	sentinel, err := categories.GetByName(entity.UncategorizedName)
	if err != nil {
		return fmt.Errorf("buscar categoría centinela: %w", err)
	}
	if sentinel == nil {
		now := time.Now()
		sentinel = &entity.Category{
			ID:          uuid.New().String(),
			Name:        entity.UncategorizedName,
			Description: "Destino de los productos cuya categoría se elimina",
			CreatedBy:   admin.Username,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := categories.Create(sentinel); err != nil {
			return fmt.Errorf("crear categoría centinela: %w", err)
		}
		log.Info().Str("name", entity.UncategorizedName).Msg("categoría centinela creada")
	}
	return nil
}
