package board

import "errors"

// Sentinel errors distinguish illegal-move reasons with errors.Is.
var (
	ErrIllegal  = errors.New("illegal move")
	ErrOccupied = errors.New("point occupied")
	ErrKo       = errors.New("ko violation")
	ErrSuicide  = errors.New("suicide")
	ErrSuperko  = errors.New("superko violation")
)
