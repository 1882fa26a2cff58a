package models

import "time"

type User struct {
	ID        int64     `json:"id"`
	TG        int64     `json:"tg"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	Balance   int64     `json:"balance"`
	Stage     int       `json:"stage"` // position in the bot's multi-step dialog
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
