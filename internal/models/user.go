package models

import "time"

// User is a registered account. Password only ever holds a bcrypt digest,
// unless the deployment stores update passwords verbatim.
type User struct {
	ID             string          `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	Username       string          `json:"Username" gorm:"uniqueIndex;type:varchar(100);not null"`
	Password       string          `json:"Password,omitempty" gorm:"type:varchar(255);not null"`
	Email          string          `json:"Email" gorm:"type:varchar(255);not null"`
	Birthday       *time.Time      `json:"Birthday,omitempty"`
	FavoriteMovies []string        `json:"FavoriteMovies" gorm:"-"`
	Favorites      []FavoriteMovie `json:"-" gorm:"foreignKey:UserID"`
	CreatedAt      time.Time       `json:"-"`
	UpdatedAt      time.Time       `json:"-"`
}

// FavoriteMovie is one element of a user's favorites set. The composite key
// makes the set unique per user; MovieID is not a foreign key.
type FavoriteMovie struct {
	UserID    string    `gorm:"primaryKey;type:varchar(36)"`
	MovieID   string    `gorm:"primaryKey;type:varchar(64)"`
	CreatedAt time.Time `gorm:"index"`
}

// UserFields are the fields replaced by a full user update.
type UserFields struct {
	Username string
	Password string
	Email    string
	Birthday *time.Time
}

// Redacted returns a copy without the password digest.
func (u User) Redacted() User {
	u.Password = ""
	return u
}
