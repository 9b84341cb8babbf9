package attendance

import (
	"time"

	"payrolld/internal/domain/validation"
)

// Record is one daily clock-in/clock-out entry. Many records reference one
// employee by id.
type Record struct {
	employeeID int
	date       time.Time
	logIn      *time.Time
	logOut     *time.Time
}

func NewRecord() *Record {
	return &Record{}
}

func (r *Record) SetEmployeeID(id int) error {
	if err := validation.RequirePositiveInt("employee id", id); err != nil {
		return err
	}
	r.employeeID = id
	return nil
}

func (r *Record) SetDate(date time.Time) error {
	if date.IsZero() {
		return validation.Fieldf("attendance date is required")
	}
	r.date = date
	return nil
}

// SetLogIn and SetLogOut accept nil; times are optional until clocked.
func (r *Record) SetLogIn(t *time.Time)  { r.logIn = t }
func (r *Record) SetLogOut(t *time.Time) { r.logOut = t }

func (r *Record) EmployeeID() int    { return r.employeeID }
func (r *Record) Date() time.Time    { return r.date }
func (r *Record) LogIn() *time.Time  { return r.logIn }
func (r *Record) LogOut() *time.Time { return r.logOut }

// WorkedHours is log-out minus log-in, 0 when either time is missing or the
// pair is inverted.
func (r *Record) WorkedHours() float64 {
	if r.logIn == nil || r.logOut == nil {
		return 0
	}
	hours := r.logOut.Sub(*r.logIn).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}
