package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
	"github.com/binharademo/trelloclone/internal/service/board"
	"github.com/binharademo/trelloclone/internal/transport/dataloader"
)

type boardService interface {
	CreateBoard(ctx context.Context, input board.CreateBoardInput) (*board.Details, error)
	GetBoard(ctx context.Context, boardID uuid.UUID) (*board.Details, error)
	ListBoards(ctx context.Context) ([]domain.Board, error)
	DeleteBoard(ctx context.Context, boardID uuid.UUID) (bool, error)
	ListCards(ctx context.Context, listID uuid.UUID) ([]domain.Card, error)
}

// BoardHandler serves board and list endpoints.
type BoardHandler struct {
	svc boardService
	log *slog.Logger
}

// NewBoardHandler creates a BoardHandler.
func NewBoardHandler(svc boardService, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{svc: svc, log: logger.With("handler", "board")}
}

type createBoardRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// List handles GET /boards.
func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	boards, err := h.svc.ListBoards(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	owners := make([]uuid.UUID, len(boards))
	for i, b := range boards {
		owners[i] = b.OwnerID
	}
	names, err := dataloader.DisplayNames(r.Context(), owners)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := make([]boardResponse, len(boards))
	for i, b := range boards {
		resp[i] = toBoardResponse(b, names)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /boards.
func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBoardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	details, err := h.svc.CreateBoard(r.Context(), board.CreateBoardInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	h.writeDetails(w, r, http.StatusCreated, details)
}

// Get handles GET /boards/{boardID}.
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	boardID, ok := uuidParam(w, r, "boardID")
	if !ok {
		return
	}

	details, err := h.svc.GetBoard(r.Context(), boardID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	h.writeDetails(w, r, http.StatusOK, details)
}

// Delete handles DELETE /boards/{boardID}.
func (h *BoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	boardID, ok := uuidParam(w, r, "boardID")
	if !ok {
		return
	}

	deleted, err := h.svc.DeleteBoard(r.Context(), boardID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "board not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCards handles GET /lists/{listID}/cards.
func (h *BoardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	listID, ok := uuidParam(w, r, "listID")
	if !ok {
		return
	}

	cards, err := h.svc.ListCards(r.Context(), listID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardDTOs(cards))
}

func (h *BoardHandler) writeDetails(w http.ResponseWriter, r *http.Request, status int, d *board.Details) {
	names, err := dataloader.DisplayNames(r.Context(), []uuid.UUID{d.Board.OwnerID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, status, toBoardDetailsResponse(d, names))
}
