package handler

import (
	"errors"
	"log"

	"jotbox/dto"
	"jotbox/middleware"
	"jotbox/model"
	"jotbox/services"
	"jotbox/usecase"
	"jotbox/utils"

	"github.com/gin-gonic/gin"
)

type NotesHandler struct {
	notes *usecase.NotesService
}

func NewNotesHandler(notes *usecase.NotesService) *NotesHandler {
	return &NotesHandler{notes: notes}
}

func (h *NotesHandler) List(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		utils.Unauthorized(c, services.ErrTokenMissing.Error())
		return
	}

	notes, err := h.notes.List(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error listing notes for %s: %v", userID, err)
		utils.InternalError(c, "failed to list notes")
		return
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}

func (h *NotesHandler) Create(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		utils.Unauthorized(c, services.ErrTokenMissing.Error())
		return
	}

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, err)
		return
	}

	note, err := h.notes.Create(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		if usecase.IsNoteValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		log.Printf("Error creating note for %s: %v", userID, err)
		utils.InternalError(c, "failed to create note")
		return
	}

	utils.Created(c, dto.ToNoteResponse(note))
}

func (h *NotesHandler) Get(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		utils.Unauthorized(c, services.ErrTokenMissing.Error())
		return
	}

	note, err := h.notes.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrNoteNotFound) {
			utils.NotFound(c, model.ErrNoteNotFound.Error())
			return
		}
		log.Printf("Error fetching note for %s: %v", userID, err)
		utils.InternalError(c, "failed to fetch note")
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func (h *NotesHandler) Update(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		utils.Unauthorized(c, services.ErrTokenMissing.Error())
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, err)
		return
	}

	note, err := h.notes.Update(c.Request.Context(), userID, c.Param("id"), req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoteNotFound):
			utils.NotFound(c, model.ErrNoteNotFound.Error())
		case usecase.IsNoteValidationError(err):
			utils.BadRequest(c, err.Error())
		default:
			log.Printf("Error updating note for %s: %v", userID, err)
			utils.InternalError(c, "failed to update note")
		}
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func (h *NotesHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		utils.Unauthorized(c, services.ErrTokenMissing.Error())
		return
	}

	if err := h.notes.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, model.ErrNoteNotFound) {
			utils.NotFound(c, model.ErrNoteNotFound.Error())
			return
		}
		log.Printf("Error deleting note for %s: %v", userID, err)
		utils.InternalError(c, "failed to delete note")
		return
	}

	utils.NoContent(c)
}
