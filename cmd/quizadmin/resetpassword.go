package main

import (
	"context"

	authRepo "schoolquiz_backend/internals/features/users/auth/repository"
	helperAuth "schoolquiz_backend/internals/helpers/auth"
)

func (cli *commandLine) resetPassword(ctx context.Context, email, pwd string) error {
	usr, err := authRepo.FindUserByEmail(ctx, cli.db, email)
	if err != nil {
		return err
	}
	hashed, err := helperAuth.HashPassword(pwd)
	if err != nil {
		return err
	}
	return authRepo.UpdateUserPassword(ctx, cli.db, usr.ID, hashed)
}
