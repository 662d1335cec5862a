package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailops/backend/internal/domain/catalog"
	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/network"
	"github.com/retailops/backend/internal/domain/planning"
	"github.com/retailops/backend/internal/domain/production"
)

// Builders for aggregator inputs. Aggregators only read entity fields, so
// tests construct literals instead of going through the validating
// constructors.

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time {
	return &t
}

func testDistrict(name string) network.District {
	d := network.District{Name: name}
	d.ID = uuid.New()
	return d
}

func testStore(name string, districtID *uuid.UUID) network.Store {
	s := network.Store{Name: name, DistrictID: districtID}
	s.ID = uuid.New()
	return s
}

func testProduct(name string, costPrice, salePrice float64) catalog.Product {
	p := catalog.Product{
		Name:      name,
		CostPrice: decimal.NewFromFloat(costPrice),
		SalePrice: decimal.NewFromFloat(salePrice),
	}
	p.ID = uuid.New()
	return p
}

type movementSpec struct {
	date     time.Time
	district uuid.UUID
	store    *uuid.UUID
	product  uuid.UUID
	op       ledger.OperationType
	pay      ledger.PaymentType
	qty      float64
	price    float64
}

func testMovement(spec movementSpec) ledger.Movement {
	if spec.pay == "" {
		spec.pay = ledger.PaymentCash
	}
	m := ledger.Movement{
		Date:          spec.date,
		DistrictID:    spec.district,
		StoreID:       spec.store,
		ProductID:     spec.product,
		OperationType: spec.op,
		PaymentType:   spec.pay,
		Quantity:      decimal.NewFromFloat(spec.qty),
		UnitPrice:     decimal.NewFromFloat(spec.price),
	}
	m.ID = uuid.New()
	return m
}

func testPayment(date time.Time, districtID *uuid.UUID, storeID uuid.UUID, amount float64) ledger.StorePayment {
	p := ledger.StorePayment{
		Date:       date,
		DistrictID: districtID,
		StoreID:    storeID,
		Amount:     decimal.NewFromFloat(amount),
		Method:     "cash",
	}
	p.ID = uuid.New()
	return p
}

func testBatch(date time.Time, productID uuid.UUID, produced, bonusPool float64) production.Batch {
	b := production.Batch{
		Date:         date,
		ProductID:    productID,
		ProducedQty:  decimal.NewFromFloat(produced),
		BonusPoolQty: decimal.NewFromFloat(bonusPool),
	}
	b.ID = uuid.New()
	return b
}

func testPlan(districtID uuid.UUID, start, end time.Time, revenue float64) planning.RevenuePlan {
	p := planning.RevenuePlan{
		DistrictID:  districtID,
		PeriodStart: start,
		PeriodEnd:   end,
		PlanRevenue: decimal.NewFromFloat(revenue),
	}
	p.ID = uuid.New()
	return p
}

func decEq(d decimal.Decimal, v float64) bool {
	return d.Equal(decimal.NewFromFloat(v))
}
