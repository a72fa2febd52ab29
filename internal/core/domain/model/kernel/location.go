package kernel

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// MaxNotesLength bounds the free-form delivery notes attached to a location.
const MaxNotesLength = 500

// ErrLocationIsNotConstructed is returned when attempting to use an improperly initialized Location.
// Locations must be created using the NewLocation constructor to ensure validity.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location represents a delivery destination inside a campus or building
// complex. It is an immutable value object owned by the order that references
// it; it has no identity of its own.
//
// Building and room number are required; notes are optional free text for the
// courier (gate codes, floor, etc.).
//
// The zero value of Location is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	loc, err := kernel.NewLocation("Science Hall", "204", "second floor, east wing")
//	if err != nil {
//	    // Handle validation error
//	}
type Location struct { //nolint:recvcheck //using for validation
	building   string
	roomNumber string
	notes      string

	guard guard.ConstructorGuard
}

// NewLocation creates a new Location.
// Building and room number must be non-empty; notes may be empty and are
// bounded by MaxNotesLength.
func NewLocation(building, roomNumber, notes string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setBuilding(building),
		loc.setRoomNumber(roomNumber),
		loc.setNotes(notes),
	); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed using the constructor.
// The zero value of Location is invalid and will fail this validation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Building returns the building name.
func (l Location) Building() string {
	return l.building
}

// RoomNumber returns the room number within the building.
func (l Location) RoomNumber() string {
	return l.roomNumber
}

// Notes returns the optional courier notes. Empty when none were given.
func (l Location) Notes() string {
	return l.notes
}

// IsEqual compares two locations by building, room number and notes.
func (l Location) IsEqual(other Location) bool {
	return l.building == other.building &&
		l.roomNumber == other.roomNumber &&
		l.notes == other.notes
}

// String returns a human-readable representation such as "Science Hall, room 204".
func (l Location) String() string {
	return fmt.Sprintf("%s, room %s", l.building, l.roomNumber)
}

func (l *Location) setBuilding(building string) error {
	if building == "" {
		return errs.NewValueIsRequiredError("building")
	}
	l.building = building
	return nil
}

func (l *Location) setRoomNumber(roomNumber string) error {
	if roomNumber == "" {
		return errs.NewValueIsRequiredError("room number")
	}
	l.roomNumber = roomNumber
	return nil
}

func (l *Location) setNotes(notes string) error {
	if len(notes) > MaxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes", len(notes), 0, MaxNotesLength)
	}
	l.notes = notes
	return nil
}
