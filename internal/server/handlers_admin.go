package server

import (
	"log"
	"net/http"

	"word-rush/internal/db"

	"gorm.io/gorm/clause"
)

type adminWordRequest struct {
	Word string `json:"word"`
}

func (s *Server) handleAdminWords(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, http.StatusOK, map[string]any{"words": defaultWords})
		return
	}
	var words []string
	if err := s.db.Model(&db.Word{}).Order("text asc").Pluck("text", &words).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load words")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"words": words})
}

func (s *Server) handleAdminWordCreate(w http.ResponseWriter, r *http.Request) {
	if !s.enforceRateLimit(w, r, "admin_word_create") {
		return
	}
	if s.db == nil {
		writeError(w, http.StatusServiceUnavailable, "word catalog not available")
		return
	}
	var req adminWordRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}
	word, err := validateWord(req.Word)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	record := db.Word{Text: word}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save word")
		return
	}
	log.Printf("catalog word added word=%s", word)
	writeJSON(w, http.StatusCreated, map[string]any{"word": word})
}

func (s *Server) handleAdminWordDelete(w http.ResponseWriter, r *http.Request) {
	if !s.enforceRateLimit(w, r, "admin_word_delete") {
		return
	}
	if s.db == nil {
		writeError(w, http.StatusServiceUnavailable, "word catalog not available")
		return
	}
	var req adminWordRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}
	word, err := validateWord(req.Word)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result := s.db.Where("text = ?", word).Delete(&db.Word{})
	if result.Error != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete word")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, errWordNotFound)
		return
	}
	log.Printf("catalog word deleted word=%s", word)
	writeJSON(w, http.StatusOK, map[string]any{"deleted": word})
}
