package boardgame

import (
	"time"

	"github.com/shopspring/decimal"
)

// BoardGame is a catalog entry. ID and timestamps are generated by the
// database; writes reload them via RETURNING.
//
// DATABASE MAPPING: boardgames table
//
//	id             BIGSERIAL PRIMARY KEY
//	name           VARCHAR(200) NOT NULL
//	description    TEXT
//	min_players    INTEGER NOT NULL
//	max_players    INTEGER NOT NULL
//	min_playtime   INTEGER
//	max_playtime   INTEGER
//	year_published INTEGER
//	rating         NUMERIC(3,1)
//	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
//	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
type BoardGame struct {
	ID   int64
	Name string

	// Nil pointers map to SQL NULL.
	Description   *string
	MinPlayers    int
	MaxPlayers    int
	MinPlaytime   *int
	MaxPlaytime   *int
	YearPublished *int
	Rating        *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBoardGame builds an entity from an already-validated create request.
// Timestamps here are provisional; the database values win after insert.
func NewBoardGame(req *CreateBoardGameRequest) *BoardGame {
	now := time.Now()
	return &BoardGame{
		Name:          req.Name,
		Description:   req.Description,
		MinPlayers:    req.MinPlayers,
		MaxPlayers:    req.MaxPlayers,
		MinPlaytime:   req.MinPlaytime,
		MaxPlaytime:   req.MaxPlaytime,
		YearPublished: req.YearPublished,
		Rating:        req.Rating,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Apply merges a partial update into the entity. Absent fields stay
// untouched, explicit nulls clear nullable fields, values replace.
func (g *BoardGame) Apply(req *UpdateBoardGameRequest) {
	if req.Name.Present() {
		g.Name = req.Name.Value
	}
	if req.Description.Set {
		if req.Description.Null {
			g.Description = nil
		} else {
			v := req.Description.Value
			g.Description = &v
		}
	}
	if req.MinPlayers.Present() {
		g.MinPlayers = req.MinPlayers.Value
	}
	if req.MaxPlayers.Present() {
		g.MaxPlayers = req.MaxPlayers.Value
	}
	if req.MinPlaytime.Set {
		if req.MinPlaytime.Null {
			g.MinPlaytime = nil
		} else {
			v := req.MinPlaytime.Value
			g.MinPlaytime = &v
		}
	}
	if req.MaxPlaytime.Set {
		if req.MaxPlaytime.Null {
			g.MaxPlaytime = nil
		} else {
			v := req.MaxPlaytime.Value
			g.MaxPlaytime = &v
		}
	}
	if req.YearPublished.Set {
		if req.YearPublished.Null {
			g.YearPublished = nil
		} else {
			v := req.YearPublished.Value
			g.YearPublished = &v
		}
	}
	if req.Rating.Set {
		if req.Rating.Null {
			g.Rating = nil
		} else {
			v := req.Rating.Value
			g.Rating = &v
		}
	}

	g.UpdatedAt = time.Now()
}
