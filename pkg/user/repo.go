package user

import (
	"database/sql"
	"errors"
)

type MySQLRepo struct {
	DB *sql.DB
}

func NewMySQLRepo(db *sql.DB) *MySQLRepo {
	return &MySQLRepo{DB: db}
}

func (r *MySQLRepo) Create(user *User) error {
	_, err := r.DB.Exec(
		"INSERT INTO users (id, username, name, email, password, role) VALUES (?, ?, ?, ?, ?, ?)",
		user.ID, user.Username, user.Name, user.Email, user.Password, user.Role,
	)
	if err != nil {
		return err
	}
	return nil
}

func (r *MySQLRepo) FindByUsername(username string) (*User, error) {
	return r.findBy("username", username)
}

func (r *MySQLRepo) FindByEmail(email string) (*User, error) {
	return r.findBy("email", email)
}

func (r *MySQLRepo) findBy(column, value string) (*User, error) {
	var u User
	err := r.DB.QueryRow(
		"SELECT id, username, name, email, password, role FROM users WHERE "+column+" = ?",
		value,
	).Scan(&u.ID, &u.Username, &u.Name, &u.Email, &u.Password, &u.Role)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	return &u, nil
}
