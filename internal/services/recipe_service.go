package services

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mbelda/fridgechef-be/internal/apperror"
	"github.com/mbelda/fridgechef-be/internal/models"
)

// RecipeServiceProvider defines the interface for recipe history services.
type RecipeServiceProvider interface {
	Append(userID, ingredients, recipeText string) (models.Recipe, error)
	List(userID string) ([]models.Recipe, error)
	Delete(userID, recipeID string) error
}

// RecipeService provides business logic for per-user recipe history.
// Every mutation is a single SQL statement scoped to the owning user, so
// concurrent appends and deletes against the same user never lose updates.
type RecipeService struct {
	db *sql.DB
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(db *sql.DB) *RecipeService {
	return &RecipeService{db: db}
}

// Append adds a new entry to the user's history. Each call creates a new
// entry; there is no dedup.
func (s *RecipeService) Append(userID, ingredients, recipeText string) (models.Recipe, error) {
	entry := models.Recipe{
		ID:          uuid.New().String(),
		Ingredients: ingredients,
		Recipe:      recipeText,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := s.db.Exec("INSERT INTO recipes(id, user_id, ingredients, recipe, created_at) VALUES(?, ?, ?, ?, ?)",
		entry.ID, userID, entry.Ingredients, entry.Recipe, entry.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return models.Recipe{}, apperror.NewNotFound("user not found")
		}
		return models.Recipe{}, apperror.NewInternal(err)
	}
	return entry, nil
}

// List returns the user's history in insertion order, oldest first.
func (s *RecipeService) List(userID string) ([]models.Recipe, error) {
	if err := s.userExists(userID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT id, ingredients, recipe, created_at FROM recipes WHERE user_id = ? ORDER BY rowid", userID)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	defer rows.Close()

	recipes := []models.Recipe{}
	for rows.Next() {
		var entry models.Recipe
		if err := rows.Scan(&entry.ID, &entry.Ingredients, &entry.Recipe, &entry.CreatedAt); err != nil {
			return nil, apperror.NewInternal(err)
		}
		recipes = append(recipes, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal(err)
	}
	return recipes, nil
}

// Delete removes the entry with the given ID from the user's history. A
// missing entry is a no-op, not an error.
func (s *RecipeService) Delete(userID, recipeID string) error {
	if err := s.userExists(userID); err != nil {
		return err
	}

	_, err := s.db.Exec("DELETE FROM recipes WHERE id = ? AND user_id = ?", recipeID, userID)
	if err != nil {
		return apperror.NewInternal(err)
	}
	return nil
}

func (s *RecipeService) userExists(userID string) error {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM users WHERE id = ?", userID).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperror.NewNotFound("user not found")
		}
		return apperror.NewInternal(err)
	}
	return nil
}
