package model

import "time"

type User struct {
	ID int64 `json:"id"`
	FirstName string `json:"firstname"`
	LastName string `json:"lastname"`
	Email string `json:"email"`
	PasswordHash string `json:"-"` // bcrypt-хэш, наружу не отдаем
	CreatedAt time.Time `json:"created_at"`
}
