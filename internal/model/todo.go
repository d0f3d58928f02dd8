package model

import "time"

type Todo struct {
	ID int64 `json:"id"`
	Title string `json:"title"`
	CreatedByID int64 `json:"created_by_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
