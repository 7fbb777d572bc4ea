package converter

import (
	"library-backend/internal/domain/user"
	sqlc "library-backend/internal/infra/sqlc/generated"
	"library-backend/internal/pkg/errs"
	"library-backend/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		FirstName:    u.Name().First(),
		LastName:     u.Name().Last(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

func UserFromRow(row sqlc.Users) (*user.User, error) {
	name, err := user.NewName(row.FirstName, row.LastName)
	if err != nil {
		return nil, errs.Wrapf(err, "corrupted user row %s", row.ID)
	}
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, errs.Wrapf(err, "corrupted user row %s", row.ID)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "corrupted user row %s", row.ID)
	}

	return user.ReconstructUser(
		row.ID,
		name,
		email,
		row.PasswordHash,
		role,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
