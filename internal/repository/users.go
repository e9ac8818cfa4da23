package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, u *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}

type userRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewUserRepository(db *sql.DB, logger *slog.Logger) UserRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &userRepository{db: db, logger: logger}
}

const userColumns = "id, username, email, hashed_password, full_name, role, is_active, created_at"

func (r *userRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, hashed_password, full_name, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+userColumns,
		u.Username, u.Email, u.HashedPassword, u.FullName, string(u.Role), u.IsActive, time.Now().UTC())
	created, err := scanUser(row)
	if err != nil {
		r.logger.Error("failed to create user", "username", u.Username, "error", err)
		return nil, err
	}
	return created, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func scanUser(row rowScanner) (*entity.User, error) {
	var u entity.User
	var role string
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.HashedPassword, &u.FullName,
		&role, &u.IsActive, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Role = entity.Role(role)
	return &u, nil
}
