package ledger

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finpet/finpet-api/pkg/app/validation"
)

const (
	dateLayout = "2006-01-02"

	// MaxListLimit caps GET /api/transactions.
	MaxListLimit = 500

	// AmountScale is the number of decimal places amounts are stored with.
	AmountScale = 2
)

// MaxAmount is the exclusive upper bound for a transaction amount; amounts
// and balances are stored as numeric(14,2).
var MaxAmount = decimal.New(1, 12)

// CreateRequest is the body of POST /api/transactions.
type CreateRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type" validate:"omitempty,oneof=expense income"`
	TypeID     int             `json:"typeId" validate:"omitempty,oneof=1 2"`
	Category   string          `json:"category" validate:"omitempty,max=64"`
	CategoryID string          `json:"categoryId" validate:"omitempty,uuid"`
	Date       string          `json:"date"`
	Note       string          `json:"note" validate:"max=500"`
}

// Validated is a CreateRequest after validation and normalization.
type Validated struct {
	Amount     decimal.Decimal
	Type       Type
	Category   string
	CategoryID string
	Date       time.Time
	Note       string
}

// Validate checks the request and resolves its type and date. now is used
// when no date is given; dates without a time part are read in loc.
func (r *CreateRequest) Validate(now time.Time, loc *time.Location) (*Validated, map[string]string) {
	details := validation.Struct(r)
	if details == nil {
		details = map[string]string{}
	}

	switch {
	case !r.Amount.IsPositive():
		details["amount"] = "must be greater than 0"
	case !r.Amount.Equal(r.Amount.Truncate(AmountScale)):
		details["amount"] = "must have at most 2 decimal places"
	case r.Amount.GreaterThanOrEqual(MaxAmount):
		details["amount"] = "must be less than 1000000000000"
	}

	var typ Type
	switch {
	case r.TypeID != 0:
		typ = Type(r.TypeID)
	case r.Type != "":
		typ, _ = ParseType(r.Type)
	default:
		details["type"] = "type or typeId is required"
	}
	if r.TypeID != 0 && r.Type != "" {
		if parsed, err := ParseType(r.Type); err == nil && parsed != typ {
			details["type"] = "does not match typeId"
		}
	}

	date := now
	if r.Date != "" {
		d, err := ParseDate(r.Date, loc)
		if err != nil {
			details["date"] = "must be RFC3339 or YYYY-MM-DD"
		} else {
			date = d
		}
	}

	if len(details) > 0 {
		return nil, details
	}

	return &Validated{
		Amount:     r.Amount,
		Type:       typ,
		Category:   strings.TrimSpace(r.Category),
		CategoryID: r.CategoryID,
		Date:       date,
		Note:       strings.TrimSpace(r.Note),
	}, nil
}

// ParseDate accepts RFC3339 timestamps and plain dates in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(dateLayout, s, loc)
}

// ParseListQuery reads the startDate, endDate, type and limit query
// parameters. A plain endDate includes that whole day.
func ParseListQuery(q url.Values, loc *time.Location) (ListFilter, map[string]string) {
	var (
		filter  ListFilter
		details = map[string]string{}
	)

	if raw := q.Get("startDate"); raw != "" {
		start, err := ParseDate(raw, loc)
		if err != nil {
			details["startDate"] = "must be RFC3339 or YYYY-MM-DD"
		} else {
			filter.Start = &start
		}
	}

	if raw := q.Get("endDate"); raw != "" {
		end, err := ParseDate(raw, loc)
		if err != nil {
			details["endDate"] = "must be RFC3339 or YYYY-MM-DD"
		} else {
			if len(raw) == len(dateLayout) {
				end = end.AddDate(0, 0, 1)
			}
			filter.End = &end
		}
	}

	if filter.Start != nil && filter.End != nil && !filter.End.After(*filter.Start) {
		details["endDate"] = "must be after startDate"
	}

	if raw := q.Get("type"); raw != "" && raw != "all" {
		typ, err := ParseType(raw)
		if err != nil {
			details["type"] = "must be one of: expense income"
		} else {
			filter.Type = typ
		}
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 || limit > MaxListLimit {
			details["limit"] = "must be between 1 and " + strconv.Itoa(MaxListLimit)
		} else {
			filter.Limit = limit
		}
	}

	if len(details) > 0 {
		return ListFilter{}, details
	}
	return filter, nil
}
