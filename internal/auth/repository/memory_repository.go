package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	authdomain "shop-backend/internal/auth/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryUserRepository keeps users in process memory. Ids are ObjectID hex
// strings so that routes behave the same as on the mongo store.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*authdomain.User
}

// NewMemoryUserRepository creates an empty in-memory UserRepository
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users: make(map[string]*authdomain.User),
	}
}

func (r *memoryUserRepository) Create(_ context.Context, user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	now := time.Now().UTC()
	user.ID = primitive.NewObjectID().Hex()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Tokens == nil {
		user.Tokens = []string{}
	}

	r.users[user.ID] = user.Clone()
	return nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.users[id].Clone(), nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u.Clone(), nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByIDAndToken(_ context.Context, id, token string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok || !u.HasToken(token) {
		return nil, nil
	}
	return u.Clone(), nil
}

func (r *memoryUserRepository) List(_ context.Context) ([]*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*authdomain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u.Clone())
	}
	// ObjectID hex sorts by creation time
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *memoryUserRepository) Update(_ context.Context, id string, upd UserUpdate) (*authdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.Email != nil {
		for otherID, u := range r.users {
			if otherID != id && u.Email == *upd.Email {
				return nil, ErrDuplicateEmail
			}
		}
		stored.Email = *upd.Email
	}
	if upd.Password != nil {
		stored.Password = *upd.Password
	}
	stored.UpdatedAt = time.Now().UTC()
	return stored.Clone(), nil
}

func (r *memoryUserRepository) AddToken(_ context.Context, id, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	stored.Tokens = append(stored.Tokens, token)
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memoryUserRepository) ClearTokens(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	stored.Tokens = []string{}
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memoryUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}
