package models

import "time"

// Genre is embedded in every movie of that genre.
type Genre struct {
	Name        string `json:"Name" gorm:"index;type:varchar(100)"`
	Description string `json:"Description"`
}

// Director is embedded in every movie they directed.
type Director struct {
	Name string `json:"Name" gorm:"index;type:varchar(100)"`
	Bio  string `json:"Bio"`
}

// Movie is a catalog entry. The API never mutates movies.
type Movie struct {
	ID          string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	Title       string    `json:"Title" gorm:"index;type:varchar(255);not null" validate:"required"`
	Description string    `json:"Description" gorm:"not null" validate:"required"`
	Genre       Genre     `json:"Genre" gorm:"embedded;embeddedPrefix:genre_"`
	Director    Director  `json:"Director" gorm:"embedded;embeddedPrefix:director_"`
	Actors      []string  `json:"Actors" gorm:"serializer:json"`
	ImagePath   string    `json:"ImagePath"`
	Featured    bool      `json:"Featured"`
	CreatedAt   time.Time `json:"-"`
}

// GenreSummary groups the movies sharing one genre name.
type GenreSummary struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Movies      []Movie `json:"movies"`
}

// DirectorSummary groups the movies sharing one director name.
type DirectorSummary struct {
	Name   string  `json:"name"`
	Bio    string  `json:"bio"`
	Movies []Movie `json:"movies"`
}
