package repositories

import (
	"database/sql"

	"github.com/swipeschedule/ss_backendl/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new account and returns its id.
func (r *UserRepository) Create(username, passwordHash, role string) (int, error) {
	var id int
	err := r.db.QueryRow(
		"INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3) RETURNING id",
		username, passwordHash, role,
	).Scan(&id)
	return id, err
}

func (r *UserRepository) Exists(username string) (bool, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM users WHERE username = $1", username).Scan(&count)
	return count > 0, err
}

func (r *UserRepository) ByUsername(username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(
		"SELECT id, username, password_hash, role FROM users WHERE username = $1",
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ByID(id int) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(
		"SELECT id, username, password_hash, role FROM users WHERE id = $1",
		id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
