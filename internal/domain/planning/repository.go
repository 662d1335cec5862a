package planning

import (
	"github.com/retailops/backend/internal/domain/shared"
)

// RevenuePlanRepository manages revenue plan persistence
type RevenuePlanRepository interface {
	shared.Repository[RevenuePlan]
}
