package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	authdomain "shop-backend/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormUserRepository implements UserRepository using GORM
type gormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM-based UserRepository
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{
		db: db,
	}
}

func (r *gormUserRepository) Create(ctx context.Context, user *authdomain.User) error {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if user.Tokens == nil {
		user.Tokens = []string{}
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *gormUserRepository) first(ctx context.Context, query string, args ...interface{}) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.WithContext(ctx).Where(query, args...).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, id string) (*authdomain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	return r.first(ctx, "id = ?", id)
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *gormUserRepository) FindByIDAndToken(ctx context.Context, id, token string) (*authdomain.User, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}
	if !user.HasToken(token) {
		return nil, nil
	}
	return user, nil
}

func (r *gormUserRepository) List(ctx context.Context) ([]*authdomain.User, error) {
	var users []*authdomain.User
	if err := r.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (r *gormUserRepository) Update(ctx context.Context, id string, upd UserUpdate) (*authdomain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	columns := map[string]interface{}{"updated_at": time.Now()}
	if upd.Email != nil {
		columns["email"] = *upd.Email
	}
	if upd.Password != nil {
		columns["password"] = *upd.Password
	}

	res := r.db.WithContext(ctx).Model(&authdomain.User{}).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("updating user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	user, err := r.first(ctx, "id = ?", id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// mutateTokens locks the user row and rewrites its token list in one transaction
func (r *gormUserRepository) mutateTokens(ctx context.Context, id string, fn func([]string) []string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user authdomain.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("locking user: %w", err)
		}

		user.Tokens = fn(user.Tokens)
		user.UpdatedAt = time.Now()
		if err := tx.Save(&user).Error; err != nil {
			return fmt.Errorf("saving user tokens: %w", err)
		}
		return nil
	})
}

func (r *gormUserRepository) AddToken(ctx context.Context, id, token string) error {
	return r.mutateTokens(ctx, id, func(tokens []string) []string {
		return append(tokens, token)
	})
}

func (r *gormUserRepository) ClearTokens(ctx context.Context, id string) error {
	return r.mutateTokens(ctx, id, func([]string) []string {
		return []string{}
	})
}

func (r *gormUserRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	res := r.db.WithContext(ctx).Delete(&authdomain.User{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("deleting user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
