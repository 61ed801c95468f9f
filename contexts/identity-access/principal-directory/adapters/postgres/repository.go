package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"ideabazaar/contexts/identity-access/principal-directory/domain/entities"
	domainerrors "ideabazaar/contexts/identity-access/principal-directory/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the principal-directory schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&principalModel{})
}

func (r *Repository) GetPrincipal(ctx context.Context, principalID string) (entities.Principal, error) {
	var row principalModel
	err := r.db.WithContext(ctx).
		Where("principal_id = ?", strings.TrimSpace(principalID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Principal{}, domainerrors.ErrPrincipalNotFound
		}
		return entities.Principal{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CreatePrincipal(ctx context.Context, principal entities.Principal) error {
	row := principalModelFromEntity(principal)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicatePrincipal
		}
		return err
	}
	return nil
}

func (r *Repository) UpdatePrincipal(ctx context.Context, principal entities.Principal) error {
	row := principalModelFromEntity(principal)
	result := r.db.WithContext(ctx).
		Model(&principalModel{}).
		Where("principal_id = ?", row.PrincipalID).
		Updates(map[string]any{
			"username":   row.Username,
			"email":      row.Email,
			"role":       row.Role,
			"tier":       row.Tier,
			"is_active":  row.IsActive,
			"updated_at": row.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrDuplicatePrincipal
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPrincipalNotFound
	}
	return nil
}

type principalModel struct {
	PrincipalID string    `gorm:"column:principal_id;primaryKey"`
	Username    string    `gorm:"column:username"`
	Email       string    `gorm:"column:email;uniqueIndex"`
	Role        string    `gorm:"column:role"`
	Tier        string    `gorm:"column:tier"`
	IsActive    bool      `gorm:"column:is_active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (principalModel) TableName() string {
	return "directory_principals"
}

func principalModelFromEntity(item entities.Principal) principalModel {
	return principalModel{
		PrincipalID: strings.TrimSpace(item.PrincipalID),
		Username:    strings.TrimSpace(item.Username),
		Email:       strings.TrimSpace(item.Email),
		Role:        string(item.Role),
		Tier:        string(item.Tier),
		IsActive:    item.IsActive,
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}
}

func (m principalModel) toEntity() entities.Principal {
	return entities.Principal{
		PrincipalID: m.PrincipalID,
		Username:    m.Username,
		Email:       m.Email,
		Role:        entities.Role(m.Role),
		Tier:        entities.Tier(m.Tier),
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
