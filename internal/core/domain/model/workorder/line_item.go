package workorder

import (
	"errors"
	"fmt"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when using an improperly initialized LineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a billable part or task owned by a work order.
// Line items have no identity outside their work order: deleting the work
// order removes them.
type LineItem struct {
	// id uniquely identifies the line item
	id kernel.UUID
	// name describes the part or task
	name string
	// quantity is the billed amount (must be positive)
	quantity int
	// unitCost is the price per unit
	unitCost decimal.Decimal
	// guard ensures the line item was properly constructed
	guard guard.ConstructorGuard
}

// NewLineItem creates a validated LineItem.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: part or task description (must be non-empty)
//   - quantity: billed amount (must be positive)
//   - unitCost: price per unit (must not be negative)
func NewLineItem(id kernel.UUID, name string, quantity int, unitCost decimal.Decimal) (*LineItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitCost.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("unitCost is invalid",
			fmt.Errorf("%s is negative", unitCost))
	}

	return &LineItem{
		id:       id,
		name:     name,
		quantity: quantity,
		unitCost: unitCost,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the LineItem was created through NewLineItem.
func (li *LineItem) Validate() error {
	if li == nil {
		return ErrLineItemIsNotConstructed
	}
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// Name returns the part or task description.
func (li *LineItem) Name() string {
	return li.name
}

// Quantity returns the billed amount.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// UnitCost returns the price per unit.
func (li *LineItem) UnitCost() decimal.Decimal {
	return li.unitCost
}

// TotalCost returns quantity times unit cost.
func (li *LineItem) TotalCost() decimal.Decimal {
	return li.unitCost.Mul(decimal.NewFromInt(int64(li.quantity)))
}
