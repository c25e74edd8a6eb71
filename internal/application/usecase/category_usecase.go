package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/jhoicas/Tienda-api/internal/application/authz"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// nameCaser pliega mayúsculas Unicode para comparar nombres de categoría.
// La regla de unicidad es sin distinguir mayúsculas.
var nameCaser = cases.Fold()

func sameName(a, b string) bool {
	return nameCaser.String(a) == nameCaser.String(b)
}

// CategoryUseCase ciclo de vida de categorías: creación, búsqueda, consulta,
// actualización, thumbnail y borrado con reasignación de productos a la
// categoría centinela. Sin estado entre llamadas.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	access     *authz.Evaluator
	storage    FileStorage
	tx         CategoryTxRunner
	log        *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	access *authz.Evaluator,
	storage FileStorage,
	tx CategoryTxRunner,
	log *logger.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{
		categories: categories,
		products:   products,
		access:     access,
		storage:    storage,
		tx:         tx,
		log:        log,
	}
}

// Create crea una categoría con el principal como creador. Roles ADMIN o
// MANAGER (validados en la ruta). Devuelve ErrDuplicate si ya existe una
// categoría con ese nombre; la carrera sobre el constraint único del almacén
// también llega como ErrDuplicate.
func (uc *CategoryUseCase) Create(username string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	exists, err := uc.categories.ExistsByName(in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		uc.log.Warn().Str("name", in.Name).Msg("la categoría ya existe")
		return nil, domain.ErrDuplicate
	}
	creator, err := uc.access.ResolvePrincipal(username)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedBy:   creator.Username,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categories.Create(category); err != nil {
		return nil, err
	}
	uc.log.Info().Str("name", category.Name).Str("created_by", creator.Username).Msg("categoría creada")
	return toCategoryResponse(category), nil
}

// Search busca categorías con filtro componible y paginación. Cualquier
// usuario autenticado puede buscar.
func (uc *CategoryUseCase) Search(filter dto.CategoryFilterRequest, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.categories.Search(repository.CategoryFilter{
		Name:          filter.Name,
		CreatedBy:     filter.CreatedBy,
		CreatedAfter:  filter.CreatedAfter,
		CreatedBefore: filter.CreatedBefore,
	}, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// GetByID obtiene una categoría por ID. ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Update actualiza nombre y descripción. Solo el admin o el creador pueden
// hacerlo; un rename que colisione con otra categoría devuelve ErrDuplicate.
func (uc *CategoryUseCase) Update(username, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if category.IsProtected() {
		return nil, domain.ErrProtectedCategory
	}
	if err := uc.checkAccess(username, category); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !sameName(category.Name, in.Name) {
		exists, err := uc.categories.ExistsByName(in.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			uc.log.Warn().Str("name", in.Name).Msg("la categoría ya existe")
			return nil, domain.ErrDuplicate
		}
	}
	category.Name = in.Name
	category.Description = in.Description
	category.UpdatedAt = time.Now()
	if err := uc.categories.Update(category); err != nil {
		return nil, err
	}
	uc.log.Info().Str("name", category.Name).Msg("categoría actualizada")
	return toCategoryResponse(category), nil
}

// SetThumbnail valida que el archivo sea una imagen, lo delega al storage y
// persiste la referencia. El storage no se invoca si el content type no
// comienza con "image/".
func (uc *CategoryUseCase) SetThumbnail(username, id string, file dto.FileUpload) (string, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return "", err
	}
	if category == nil {
		return "", domain.ErrNotFound
	}
	if category.IsProtected() {
		return "", domain.ErrProtectedCategory
	}
	if err := uc.checkAccess(username, category); err != nil {
		return "", err
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		uc.log.Warn().Str("content_type", file.ContentType).Msg("tipo de archivo inválido para thumbnail")
		return "", domain.ErrInvalidInput
	}
	fileName, err := uc.storage.StoreFile(file.FileName, file.ContentType, file.Data)
	if err != nil {
		return "", err
	}
	category.ImageName = fileName
	category.UpdatedAt = time.Now()
	if err := uc.categories.Update(category); err != nil {
		return "", err
	}
	uc.log.Info().Str("name", category.Name).Str("image", fileName).Msg("thumbnail de categoría actualizado")
	return fileName, nil
}

// Delete elimina una categoría. Los productos que la referencien se
// reasignan a la centinela "Sin categoría" en la misma transacción del
// borrado: o ambas cosas se confirman, o ninguna. La centinela ausente es
// una violación de los datos semilla y se reporta como tal.
func (uc *CategoryUseCase) Delete(ctx context.Context, username, id string) error {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if category.IsProtected() {
		return domain.ErrProtectedCategory
	}
	if err := uc.checkAccess(username, category); err != nil {
		return err
	}

	err = uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		orphans, err := products.ListByCategory(category.ID)
		if err != nil {
			return err
		}
		if len(orphans) > 0 {
			sentinel, err := categories.GetByName(entity.UncategorizedName)
			if err != nil {
				return err
			}
			if sentinel == nil {
				uc.log.Error().Str("sentinel", entity.UncategorizedName).
					Msg("categoría centinela ausente: faltan los datos semilla del despliegue")
				return fmt.Errorf("categoría centinela %q ausente: %w", entity.UncategorizedName, domain.ErrIntegrity)
			}
			now := time.Now()
			for _, p := range orphans {
				p.CategoryID = sentinel.ID
				p.UpdatedAt = now
			}
			if err := products.SaveAll(orphans); err != nil {
				return err
			}
			uc.log.Info().Str("name", category.Name).Int("products", len(orphans)).
				Msg("productos reasignados a la categoría centinela")
		}
		return categories.Delete(category.ID)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("name", category.Name).Msg("categoría eliminada")
	return nil
}

// checkAccess evalúa admin-o-creador y registra el rechazo.
func (uc *CategoryUseCase) checkAccess(username string, category *entity.Category) error {
	if err := uc.access.CanModifyCategory(username, category); err != nil {
		uc.log.Warn().Str("username", username).Str("category", category.Name).
			Msg("principal sin permisos para mutar la categoría")
		return err
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ImageName:   c.ImageName,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
