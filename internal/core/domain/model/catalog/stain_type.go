package catalog

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrStainTypeIsNotConstructed is returned when a StainType instance was not
// created through the NewStainType factory method.
var ErrStainTypeIsNotConstructed = errors.New("StainType must be created via NewStainType constructor")

// StainType is a treatable stain kind with the per-unit surcharge applied
// when a line item is marked with it.
type StainType struct {
	id        kernel.UUID
	name      string
	surcharge kernel.Price

	isConstructed bool
}

// NewStainType creates a new StainType with validation.
func NewStainType(id kernel.UUID, name string, surcharge kernel.Price) (*StainType, error) {
	stainType := &StainType{
		isConstructed: true,
	}

	if err := errors.Join(
		stainType.setID(id),
		stainType.setName(name),
		stainType.setSurcharge(surcharge),
	); err != nil {
		return nil, err
	}

	return stainType, nil
}

// Validate ensures the StainType instance was properly constructed.
func (s *StainType) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStainTypeIsNotConstructed
	}

	return nil
}

// ID returns the stain type's unique identifier.
func (s *StainType) ID() kernel.UUID {
	return s.id
}

// Name returns the stain type's display name.
func (s *StainType) Name() string {
	return s.name
}

// Surcharge returns the per-unit treatment surcharge.
func (s *StainType) Surcharge() kernel.Price {
	return s.surcharge
}

// ChangeSurcharge updates the per-unit treatment surcharge.
// Existing orders keep the surcharge they captured at order-entry time.
func (s *StainType) ChangeSurcharge(surcharge kernel.Price) error {
	return s.setSurcharge(surcharge)
}

func (s *StainType) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *StainType) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *StainType) setSurcharge(surcharge kernel.Price) error {
	if err := surcharge.Validate(); err != nil {
		return err
	}
	s.surcharge = surcharge
	return nil
}
