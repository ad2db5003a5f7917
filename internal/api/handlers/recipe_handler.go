package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mbelda/fridgechef-be/internal/apperror"
	"github.com/mbelda/fridgechef-be/internal/auth"
	"github.com/mbelda/fridgechef-be/internal/generation"
	"github.com/mbelda/fridgechef-be/internal/services"
	"github.com/rs/zerolog/log"
)

// RecipeHandler handles recipe generation and per-user history requests.
type RecipeHandler struct {
	recipes   services.RecipeServiceProvider
	generator generation.Generator
	events    services.EventServiceProvider
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipes services.RecipeServiceProvider, generator generation.Generator, events services.EventServiceProvider) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, generator: generator, events: events}
}

// GeneratePayload defines the structure for generation requests.
type GeneratePayload struct {
	Ingredients string `json:"ingredients"`
}

// DeletePayload defines the structure for history deletion requests.
type DeletePayload struct {
	RecipeID string `json:"recipeId"`
}

// Generate requests a recipe from the generation API. When the request
// carries a valid token the result is appended to that user's history;
// persistence is fire-and-forget and never alters the generation response.
func (h *RecipeHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var payload GeneratePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperror.NewValidation("invalid request body"))
		return
	}
	if payload.Ingredients == "" {
		writeError(w, apperror.NewValidation("ingredients are required"))
		return
	}

	recipeText, err := h.generator.Generate(r.Context(), payload.Ingredients)
	if err != nil {
		log.Error().Err(err).Msg("Recipe generation failed")
		writeError(w, err)
		return
	}

	if userID, ok := auth.UserIDFromContext(r.Context()); ok {
		if _, err := h.recipes.Append(userID, payload.Ingredients, recipeText); err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("Failed to persist generated recipe")
			h.recordEvent("recipe.save_failed", "warn", "failed to persist generated recipe", &userID)
		} else {
			h.recordEvent("recipe.saved", "info", "generated recipe saved to history", &userID)
		}
	} else {
		h.recordEvent("recipe.generated", "info", "recipe generated anonymously", nil)
	}

	writeJSON(w, http.StatusOK, map[string]string{"recipe": recipeText})
}

// List returns the authenticated user's recipe history in stored order.
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.NewAuth("authentication required"))
		return
	}

	recipes, err := h.recipes.List(userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Failed to list recipes")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"recipes": recipes})
}

// Delete removes a single entry from the authenticated user's history. An
// absent entry is a no-op.
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.NewAuth("authentication required"))
		return
	}

	var payload DeletePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperror.NewValidation("invalid request body"))
		return
	}
	if payload.RecipeID == "" {
		writeError(w, apperror.NewValidation("recipeId is required"))
		return
	}

	if err := h.recipes.Delete(userID, payload.RecipeID); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Str("recipe_id", payload.RecipeID).Msg("Failed to delete recipe")
		writeError(w, err)
		return
	}

	h.recordEvent("recipe.deleted", "info", "recipe deleted from history", &userID)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Recipe deleted successfully"})
}

func (h *RecipeHandler) recordEvent(eventType, level, message string, userID *string) {
	if err := h.events.Record(eventType, level, message, userID); err != nil {
		log.Warn().Err(err).Str("type", eventType).Msg("Failed to record event")
	}
}
