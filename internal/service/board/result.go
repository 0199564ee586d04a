package board

import "github.com/binharademo/trelloclone/internal/domain"

// Details is a board with its lists in position order.
type Details struct {
	Board domain.Board
	Lists []ListCards
}

// ListCards is a list with the cards resting in it, oldest first.
type ListCards struct {
	List  domain.List
	Cards []domain.Card
}
