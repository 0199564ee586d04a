package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
	"github.com/binharademo/trelloclone/internal/realtime"
	"github.com/binharademo/trelloclone/internal/service/lifecycle"
	"github.com/binharademo/trelloclone/internal/transport/dataloader"
)

type cardService interface {
	CreateCard(ctx context.Context, input lifecycle.CreateCardInput) (*domain.Card, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	UpdateCard(ctx context.Context, input lifecycle.UpdateCardInput) (*domain.Card, error)
	MoveCard(ctx context.Context, input lifecycle.MoveCardInput) (*domain.Card, error)
	DeleteCard(ctx context.Context, input lifecycle.DeleteCardInput) (bool, error)
	GetHistory(ctx context.Context, cardID uuid.UUID) ([]domain.CardHistory, error)
}

// CardHandler serves card lifecycle endpoints.
type CardHandler struct {
	svc cardService
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc cardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: logger.With("handler", "card")}
}

type createCardRequest struct {
	ListID      uuid.UUID  `json:"listId"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

type updateCardRequest struct {
	Title           string     `json:"title"`
	Description     *string    `json:"description"`
	DueDate         *time.Time `json:"dueDate"`
	ListID          *uuid.UUID `json:"listId"`
	ExpectedVersion *int64     `json:"expectedVersion"`
}

type moveCardRequest struct {
	ToListID        uuid.UUID `json:"toListId"`
	ExpectedVersion *int64    `json:"expectedVersion"`
}

// Create handles POST /cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.create(w, r, req)
}

// CreateInList handles POST /lists/{listID}/cards. The list in the path
// wins over any listId in the body.
func (h *CardHandler) CreateInList(w http.ResponseWriter, r *http.Request) {
	listID, ok := uuidParam(w, r, "listID")
	if !ok {
		return
	}
	var req createCardRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ListID = listID
	h.create(w, r, req)
}

func (h *CardHandler) create(w http.ResponseWriter, r *http.Request, req createCardRequest) {
	card, err := h.svc.CreateCard(r.Context(), lifecycle.CreateCardInput{
		ListID:      req.ListID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Actor:       actorFromRequest(r),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, realtime.NewCardDTO(*card))
}

// Get handles GET /cards/{cardID}.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	cardID, ok := uuidParam(w, r, "cardID")
	if !ok {
		return
	}

	card, err := h.svc.GetCard(r.Context(), cardID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, realtime.NewCardDTO(*card))
}

// Update handles PUT /cards/{cardID}.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	cardID, ok := uuidParam(w, r, "cardID")
	if !ok {
		return
	}
	var req updateCardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	card, err := h.svc.UpdateCard(r.Context(), lifecycle.UpdateCardInput{
		CardID:          cardID,
		Title:           req.Title,
		Description:     req.Description,
		DueDate:         req.DueDate,
		ListID:          req.ListID,
		ExpectedVersion: req.ExpectedVersion,
		Actor:           actorFromRequest(r),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, realtime.NewCardDTO(*card))
}

// Move handles PUT /cards/{cardID}/move.
func (h *CardHandler) Move(w http.ResponseWriter, r *http.Request) {
	cardID, ok := uuidParam(w, r, "cardID")
	if !ok {
		return
	}
	var req moveCardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	card, err := h.svc.MoveCard(r.Context(), lifecycle.MoveCardInput{
		CardID:          cardID,
		ToListID:        req.ToListID,
		ExpectedVersion: req.ExpectedVersion,
		Actor:           actorFromRequest(r),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, realtime.NewCardDTO(*card))
}

// Delete handles DELETE /cards/{cardID}.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cardID, ok := uuidParam(w, r, "cardID")
	if !ok {
		return
	}

	deleted, err := h.svc.DeleteCard(r.Context(), lifecycle.DeleteCardInput{
		CardID: cardID,
		Actor:  actorFromRequest(r),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "card not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /cards/{cardID}/history, newest move first.
func (h *CardHandler) History(w http.ResponseWriter, r *http.Request) {
	cardID, ok := uuidParam(w, r, "cardID")
	if !ok {
		return
	}

	rows, err := h.svc.GetHistory(r.Context(), cardID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.UserID
	}
	names, err := dataloader.DisplayNames(r.Context(), ids)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toHistoryResponse(rows, names))
}
