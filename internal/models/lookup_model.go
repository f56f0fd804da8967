package models

type Country struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Channel struct {
	ID    string `db:"id" json:"id"`
	Label string `db:"label" json:"label"`
}

type Objective struct {
	ID    string `db:"id" json:"id"`
	Label string `db:"label" json:"label"`
}
