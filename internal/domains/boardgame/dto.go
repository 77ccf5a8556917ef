package boardgame

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"boardgames-backend/internal/shared"
)

// ========================================
// REQUEST DTOs
// ========================================

// CreateBoardGameRequest carries the POST /games body. Pointer fields are
// optional and map to NULL columns when omitted.
type CreateBoardGameRequest struct {
	Name          string           `json:"name"`
	Description   *string          `json:"description"`
	MinPlayers    int              `json:"min_players"`
	MaxPlayers    int              `json:"max_players"`
	MinPlaytime   *int             `json:"min_playtime"`
	MaxPlaytime   *int             `json:"max_playtime"`
	YearPublished *int             `json:"year_published"`
	Rating        *decimal.Decimal `json:"rating"`
}

func (r CreateBoardGameRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.MinPlayers,
			validation.Required.Error("min_players is required"),
			validation.Min(1),
			validation.Max(100),
		),
		validation.Field(&r.MaxPlayers,
			validation.Required.Error("max_players is required"),
			validation.Min(1),
			validation.Max(100),
		),
		validation.Field(&r.MinPlaytime, validation.By(ptrIntMin(1))),
		validation.Field(&r.MaxPlaytime, validation.By(ptrIntMin(1))),
		validation.Field(&r.YearPublished, validation.By(ptrIntInRange(1900, 2100))),
		validation.Field(&r.Rating, validation.By(ratingInRange)),
	)
}

// UpdateBoardGameRequest carries the PATCH /games/:id body. Every field is
// tri-state: absent leaves the column unchanged, null clears it, a value
// replaces it. Null is rejected on NOT NULL columns.
type UpdateBoardGameRequest struct {
	Name          shared.Optional[string]          `json:"name"`
	Description   shared.Optional[string]          `json:"description"`
	MinPlayers    shared.Optional[int]             `json:"min_players"`
	MaxPlayers    shared.Optional[int]             `json:"max_players"`
	MinPlaytime   shared.Optional[int]             `json:"min_playtime"`
	MaxPlaytime   shared.Optional[int]             `json:"max_playtime"`
	YearPublished shared.Optional[int]             `json:"year_published"`
	Rating        shared.Optional[decimal.Decimal] `json:"rating"`
}

func (r UpdateBoardGameRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.By(notNullString(1, 200))),
		validation.Field(&r.MinPlayers, validation.By(notNullIntInRange(1, 100))),
		validation.Field(&r.MaxPlayers, validation.By(notNullIntInRange(1, 100))),
		validation.Field(&r.MinPlaytime, validation.By(nullableIntMin(1))),
		validation.Field(&r.MaxPlaytime, validation.By(nullableIntMin(1))),
		validation.Field(&r.YearPublished, validation.By(nullableIntInRange(1900, 2100))),
		validation.Field(&r.Rating, validation.By(nullableRatingInRange)),
	)
}

// IsEmpty reports whether the request sets no fields at all. Such an update
// is still a valid no-op write.
func (r UpdateBoardGameRequest) IsEmpty() bool {
	return !r.Name.Set && !r.Description.Set &&
		!r.MinPlayers.Set && !r.MaxPlayers.Set &&
		!r.MinPlaytime.Set && !r.MaxPlaytime.Set &&
		!r.YearPublished.Set && !r.Rating.Set
}

// ========================================
// VALIDATION RULES
// ========================================

var (
	ratingMin = decimal.Zero
	ratingMax = decimal.NewFromInt(10)
)

func checkRating(v decimal.Decimal) error {
	if v.LessThan(ratingMin) || v.GreaterThan(ratingMax) {
		return errors.New("must be between 0.0 and 10.0")
	}
	return nil
}

func ratingInRange(value interface{}) error {
	rating, ok := value.(*decimal.Decimal)
	if !ok || rating == nil {
		return nil
	}
	return checkRating(*rating)
}

func nullableRatingInRange(value interface{}) error {
	o, ok := value.(shared.Optional[decimal.Decimal])
	if !ok || !o.Present() {
		return nil
	}
	return checkRating(o.Value)
}

// Pointer rules run on the raw field so a provided zero still gets range
// checked; ozzo's Min/Max treat zero as empty and would skip it.

func ptrIntMin(min int) validation.RuleFunc {
	return func(value interface{}) error {
		v, ok := value.(*int)
		if !ok || v == nil {
			return nil
		}
		if *v < min {
			return fmt.Errorf("must be no less than %d", min)
		}
		return nil
	}
}

func ptrIntInRange(min, max int) validation.RuleFunc {
	return func(value interface{}) error {
		v, ok := value.(*int)
		if !ok || v == nil {
			return nil
		}
		if *v < min || *v > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

func notNullString(min, max int) validation.RuleFunc {
	return func(value interface{}) error {
		o, ok := value.(shared.Optional[string])
		if !ok || !o.Set {
			return nil
		}
		if o.Null {
			return errors.New("cannot be null")
		}
		if l := len(o.Value); l < min || l > max {
			return fmt.Errorf("the length must be between %d and %d", min, max)
		}
		return nil
	}
}

func notNullIntInRange(min, max int) validation.RuleFunc {
	return func(value interface{}) error {
		o, ok := value.(shared.Optional[int])
		if !ok || !o.Set {
			return nil
		}
		if o.Null {
			return errors.New("cannot be null")
		}
		if o.Value < min || o.Value > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

func nullableIntInRange(min, max int) validation.RuleFunc {
	return func(value interface{}) error {
		o, ok := value.(shared.Optional[int])
		if !ok || !o.Present() {
			return nil
		}
		if o.Value < min || o.Value > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

func nullableIntMin(min int) validation.RuleFunc {
	return func(value interface{}) error {
		o, ok := value.(shared.Optional[int])
		if !ok || !o.Present() {
			return nil
		}
		if o.Value < min {
			return fmt.Errorf("must be no less than %d", min)
		}
		return nil
	}
}

// ========================================
// RESPONSE DTOs
// ========================================

type BoardGameResponse struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Description   *string          `json:"description"`
	MinPlayers    int              `json:"min_players"`
	MaxPlayers    int              `json:"max_players"`
	MinPlaytime   *int             `json:"min_playtime"`
	MaxPlaytime   *int             `json:"max_playtime"`
	YearPublished *int             `json:"year_published"`
	Rating        *decimal.Decimal `json:"rating"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ToResponse converts the entity to its API representation.
func (g *BoardGame) ToResponse() *BoardGameResponse {
	return &BoardGameResponse{
		ID:            g.ID,
		Name:          g.Name,
		Description:   g.Description,
		MinPlayers:    g.MinPlayers,
		MaxPlayers:    g.MaxPlayers,
		MinPlaytime:   g.MinPlaytime,
		MaxPlaytime:   g.MaxPlaytime,
		YearPublished: g.YearPublished,
		Rating:        g.Rating,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

type BoardGameListResponse struct {
	Games []BoardGameResponse `json:"games"`
	Total int64               `json:"total"`
	Skip  int                 `json:"skip"`
	Limit int                 `json:"limit"`
}
