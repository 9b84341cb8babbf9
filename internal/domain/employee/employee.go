package employee

import (
	"time"

	"payrolld/internal/domain/validation"
)

// Employee is the validated compensation profile. Fields are mutated through
// setters only, so every mutation re-checks its invariant.
type Employee struct {
	id                int
	firstName         string
	lastName          string
	birthDate         *time.Time
	basicSalary       float64
	status            string
	position          string
	riceSubsidy       float64
	phoneAllowance    float64
	clothingAllowance float64
}

func New() *Employee {
	return &Employee{}
}

func (e *Employee) SetID(id int) error {
	if err := validation.RequirePositiveInt("employee id", id); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Employee) SetFirstName(name string) error {
	if err := validation.RequireNonBlank("first name", name); err != nil {
		return err
	}
	e.firstName = name
	return nil
}

func (e *Employee) SetLastName(name string) error {
	if err := validation.RequireNonBlank("last name", name); err != nil {
		return err
	}
	e.lastName = name
	return nil
}

// SetBirthDate accepts nil; the birth date is optional.
func (e *Employee) SetBirthDate(birthDate *time.Time) {
	e.birthDate = birthDate
}

func (e *Employee) SetBasicSalary(salary float64) error {
	if err := validation.RequireNonNegative("basic salary", salary); err != nil {
		return err
	}
	e.basicSalary = salary
	return nil
}

func (e *Employee) SetStatus(status string)     { e.status = status }
func (e *Employee) SetPosition(position string) { e.position = position }

func (e *Employee) SetRiceSubsidy(amount float64) error {
	if err := validation.RequireNonNegative("rice subsidy", amount); err != nil {
		return err
	}
	e.riceSubsidy = amount
	return nil
}

func (e *Employee) SetPhoneAllowance(amount float64) error {
	if err := validation.RequireNonNegative("phone allowance", amount); err != nil {
		return err
	}
	e.phoneAllowance = amount
	return nil
}

func (e *Employee) SetClothingAllowance(amount float64) error {
	if err := validation.RequireNonNegative("clothing allowance", amount); err != nil {
		return err
	}
	e.clothingAllowance = amount
	return nil
}

func (e *Employee) ID() int                    { return e.id }
func (e *Employee) FirstName() string          { return e.firstName }
func (e *Employee) LastName() string           { return e.lastName }
func (e *Employee) BirthDate() *time.Time      { return e.birthDate }
func (e *Employee) BasicSalary() float64       { return e.basicSalary }
func (e *Employee) Status() string             { return e.status }
func (e *Employee) Position() string           { return e.position }
func (e *Employee) RiceSubsidy() float64       { return e.riceSubsidy }
func (e *Employee) PhoneAllowance() float64    { return e.phoneAllowance }
func (e *Employee) ClothingAllowance() float64 { return e.clothingAllowance }

func (e *Employee) FullName() string {
	return e.firstName + " " + e.lastName
}

func (e *Employee) TotalAllowances() float64 {
	return e.riceSubsidy + e.phoneAllowance + e.clothingAllowance
}

// Age returns whole years since the birth date, 0 when none is set.
func (e *Employee) Age() int {
	return e.ageAt(time.Now())
}

func (e *Employee) ageAt(now time.Time) int {
	if e.birthDate == nil {
		return 0
	}
	birth := *e.birthDate
	years := now.Year() - birth.Year()
	anniversary := time.Date(now.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, now.Location())
	if now.Before(anniversary) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
