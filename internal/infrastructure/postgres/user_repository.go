package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"freelancernow/internal/domain/user"
	"freelancernow/internal/infrastructure/crypto"
)

const uniqueViolation = "23505"

const userColumns = `id, email, name, user_type, cpf_cnpj, phone, bio, experience, area, location, profile_image, created_at, updated_at`

type UserRepository struct {
	db        *DB
	encryptor *crypto.Encryptor
}

func NewUserRepository(db *DB, encryptor *crypto.Encryptor) *UserRepository {
	return &UserRepository{
		db:        db,
		encryptor: encryptor,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *UserRepository) scanUser(row rowScanner) (*user.User, error) {
	var u user.User
	var userType, encryptedDoc string
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &userType, &encryptedDoc, &u.Phone, &u.Bio,
		&u.Experience, &u.Area, &u.Location, &u.ProfileImage, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.UserType = user.Type(userType)

	doc, err := r.encryptor.Decrypt(encryptedDoc)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt document for user %d: %w", u.ID, err)
	}
	u.Document = doc
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, params user.CreateParams) (*user.User, error) {
	query := `
		INSERT INTO users (email, name, user_type)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns

	u, err := r.scanUser(r.db.QueryRowContext(ctx, query, params.Email, params.Name, string(params.UserType)))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := r.scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := r.scanUser(r.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

// UpdateProfile applies non-nil fields only. The document is encrypted
// before it reaches the database; an empty document clears the column.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, params user.UpdateProfileParams) (*user.User, error) {
	var doc *string
	if params.Document != nil {
		encrypted, err := r.encryptor.Encrypt(*params.Document)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt document: %w", err)
		}
		doc = &encrypted
	}

	var userType *string
	if params.UserType != nil {
		t := string(*params.UserType)
		userType = &t
	}

	query := `
		UPDATE users SET
			name       = COALESCE($2, name),
			phone      = COALESCE($3, phone),
			cpf_cnpj   = COALESCE($4, cpf_cnpj),
			bio        = COALESCE($5, bio),
			experience = COALESCE($6, experience),
			area       = COALESCE($7, area),
			location   = COALESCE($8, location),
			user_type  = COALESCE($9, user_type),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	u, err := r.scanUser(r.db.QueryRowContext(ctx, query,
		userID, params.Name, params.Phone, doc, params.Bio,
		params.Experience, params.Area, params.Location, userType,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
