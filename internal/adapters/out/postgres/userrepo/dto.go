// Package userrepo implements the repository pattern for the user aggregate.
// Roles are stored as a Postgres text array; the account state as its integer
// representation.
package userrepo

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserDTO represents the database structure for persisting user aggregates.
// The email carries a unique index: it doubles as the login identifier.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Phone        string
	PasswordHash string
	Roles        pq.StringArray `gorm:"type:text[]"`
	State        int
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	roles := make(pq.StringArray, 0, len(aggregate.Roles()))
	for _, role := range aggregate.Roles() {
		roles = append(roles, string(role))
	}

	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		PasswordHash: aggregate.PasswordHash(),
		Roles:        roles,
		State:        int(aggregate.State()),
	}
}

// toDomain converts a database DTO to a user aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	roles := make([]user.Role, 0, len(dto.Roles))
	for _, role := range dto.Roles {
		roles = append(roles, user.Role(role))
	}

	return user.RestoreUser(
		id, dto.Name, dto.Email, dto.Phone, dto.PasswordHash, roles, user.AccountState(dto.State))
}
