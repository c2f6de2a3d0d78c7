package model

import "time"

type Folder struct {
	ID        string    `db:"id" json:"id"`
	FolderID  string    `db:"folder_id" json:"folder_id"`
	Name      string    `db:"name" json:"name"`
	Owner     string    `db:"owner" json:"owner"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
