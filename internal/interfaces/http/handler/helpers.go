package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/shared"
)

// dayFormat is the wire format for day-granular query parameters.
const dayFormat = "2006-01-02"

// parseIDParam parses the :id path parameter as a UUID.
func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, shared.NewDomainError("INVALID_INPUT", "Invalid id format")
	}
	return id, nil
}

// parseDayQuery parses an optional yyyy-MM-dd query parameter. A missing
// or empty parameter returns nil.
func parseDayQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dayFormat, raw)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", name+" must be in yyyy-MM-dd format")
	}
	return &t, nil
}

// parseUUIDQuery parses an optional UUID query parameter. A missing or
// empty parameter returns nil.
func parseUUIDQuery(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", name+" must be a UUID")
	}
	return &id, nil
}

// parsePeriodFilter assembles the shared ?from=&to=&districtId=&storeId=
// query contract used by ledger listings and most reports.
func parsePeriodFilter(c *gin.Context) (ledger.PeriodFilter, error) {
	var filter ledger.PeriodFilter
	var err error

	if filter.From, err = parseDayQuery(c, "from"); err != nil {
		return filter, err
	}
	if filter.To, err = parseDayQuery(c, "to"); err != nil {
		return filter, err
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return filter, shared.NewDomainError("INVALID_PERIOD", "to must not be before from")
	}
	if filter.DistrictID, err = parseUUIDQuery(c, "districtId"); err != nil {
		return filter, err
	}
	if filter.StoreID, err = parseUUIDQuery(c, "storeId"); err != nil {
		return filter, err
	}
	return filter, nil
}
