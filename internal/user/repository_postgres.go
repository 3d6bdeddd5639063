package user

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	getUserByIDQuery = `
		SELECT user_id, username, password, cart_id
		FROM users
		WHERE user_id = $1
	`
	getUserByUsernameQuery = `
		SELECT user_id, username, password, cart_id
		FROM users
		WHERE username = $1
	`
	insertCartQuery = `
		INSERT INTO carts (user_id, items, total)
		VALUES (0, '{}', 0)
		RETURNING cart_id
	`
	insertUserQuery = `
		INSERT INTO users (username, password, cart_id)
		VALUES ($1, $2, $3)
		RETURNING user_id
	`
	bindCartQuery = `UPDATE carts SET user_id = $1 WHERE cart_id = $2`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	row := r.db.QueryRow(getUserByIDQuery, id)
	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return u, nil
}

func (r *PostgresRepository) GetByUsername(username string) (User, error) {
	row := r.db.QueryRow(getUserByUsernameQuery, username)
	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return u, nil
}

// Create inserts the user together with an empty cart in one transaction so
// the cart exists for the user's whole lifetime.
func (r *PostgresRepository) Create(u User) (User, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return User{}, err
	}
	defer tx.Rollback()

	var cartID int
	if err := tx.QueryRow(insertCartQuery).Scan(&cartID); err != nil {
		return User{}, err
	}

	var userID int
	if err := tx.QueryRow(insertUserQuery, u.Username, u.Password, cartID).Scan(&userID); err != nil {
		return User{}, err
	}

	if _, err := tx.Exec(bindCartQuery, userID, cartID); err != nil {
		return User{}, err
	}

	if err := tx.Commit(); err != nil {
		return User{}, err
	}

	u.ID = userID
	u.CartID = cartID
	return u, nil
}

func scanUser(scanner rowScanner) (User, error) {
	u := User{}
	if err := scanner.Scan(&u.ID, &u.Username, &u.Password, &u.CartID); err != nil {
		return User{}, err
	}
	return u, nil
}
