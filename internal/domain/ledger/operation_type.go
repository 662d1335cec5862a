package ledger

// OperationType classifies a movement row. The set covers both trade
// operations (sale, return, exchange, bonus) and pure inventory moves
// (load, writeoff, transfer_in, transfer_out).
type OperationType string

const (
	OperationSale        OperationType = "sale"
	OperationReturn      OperationType = "return"
	OperationExchange    OperationType = "exchange"
	OperationBonus       OperationType = "bonus"
	OperationWriteoff    OperationType = "writeoff"
	OperationLoad        OperationType = "load"
	OperationTransferIn  OperationType = "transfer_in"
	OperationTransferOut OperationType = "transfer_out"
)

// AllOperationTypes returns every valid operation type
func AllOperationTypes() []OperationType {
	return []OperationType{
		OperationSale,
		OperationReturn,
		OperationExchange,
		OperationBonus,
		OperationWriteoff,
		OperationLoad,
		OperationTransferIn,
		OperationTransferOut,
	}
}

// IsValid checks if the operation type is valid
func (t OperationType) IsValid() bool {
	switch t {
	case OperationSale, OperationReturn, OperationExchange, OperationBonus,
		OperationWriteoff, OperationLoad, OperationTransferIn, OperationTransferOut:
		return true
	}
	return false
}

// IsInbound reports whether the operation adds stock to a store
func (t OperationType) IsInbound() bool {
	switch t {
	case OperationLoad, OperationReturn, OperationTransferIn:
		return true
	}
	return false
}

// IsOutbound reports whether the operation removes stock from a store
func (t OperationType) IsOutbound() bool {
	switch t {
	case OperationSale, OperationBonus, OperationExchange, OperationWriteoff, OperationTransferOut:
		return true
	}
	return false
}

// StockSign returns the stock-balance contribution of one unit: +1 for
// inbound types, -1 for outbound types, 0 for anything else.
func (t OperationType) StockSign() int {
	switch {
	case t.IsInbound():
		return 1
	case t.IsOutbound():
		return -1
	default:
		return 0
	}
}

// ConsumesProduction reports whether the operation draws down the day's
// produced quantity and is therefore subject to the production cap.
func (t OperationType) ConsumesProduction() bool {
	switch t {
	case OperationSale, OperationExchange, OperationBonus, OperationWriteoff:
		return true
	}
	return false
}

// ConsumingOperationTypes returns the operation types for which
// ConsumesProduction is true, in a form usable as a query predicate.
func ConsumingOperationTypes() []OperationType {
	return []OperationType{OperationSale, OperationExchange, OperationBonus, OperationWriteoff}
}

// PaymentType records how a movement was settled. Only credit carries
// ledger semantics: credit movements accrue store debt.
type PaymentType string

const (
	PaymentCash     PaymentType = "cash"
	PaymentCredit   PaymentType = "credit"
	PaymentCard     PaymentType = "card"
	PaymentTransfer PaymentType = "transfer"
)

// AllPaymentTypes returns every valid payment type
func AllPaymentTypes() []PaymentType {
	return []PaymentType{PaymentCash, PaymentCredit, PaymentCard, PaymentTransfer}
}

// IsValid checks if the payment type is valid
func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentCash, PaymentCredit, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// IsCredit reports whether the movement was shipped on credit
func (t PaymentType) IsCredit() bool {
	return t == PaymentCredit
}
