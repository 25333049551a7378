package database

import (
	"encoding/json"
	"fmt"
	"os"

	"movieapi/internal/models"
)

// LoadMovies reads a JSON array of movies from path.
func LoadMovies(path string) ([]models.Movie, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var movies []models.Movie
	if err := json.Unmarshal(raw, &movies); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return movies, nil
}
