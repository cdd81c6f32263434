package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolquiz_backend/internals/constants"
	authModel "schoolquiz_backend/internals/features/users/auth/model"
	authRepo "schoolquiz_backend/internals/features/users/auth/repository"
	helperAuth "schoolquiz_backend/internals/helpers/auth"
	"schoolquiz_backend/internals/testutil"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &commandLine{db: testutil.OpenTestDB(t), out: out}, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
}

func (tt cliTest) check(t *testing.T, err error) {
	t.Helper()
	switch {
	case tt.wantErr != nil:
		assert.ErrorIs(t, err, tt.wantErr)
	case tt.wantErrStr != "":
		require.Error(t, err)
		assert.Contains(t, err.Error(), tt.wantErrStr)
	default:
		assert.NoError(t, err)
	}
}

func Test_commandLine_usage(t *testing.T) {
	cli, out := setup(t)

	tests := []cliTest{
		{name: "no command", args: nil, wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "migrate", args: []string{"migrate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, cli.run(append([]string{"quizadmin"}, tt.args...)))
		})
	}
	assert.Contains(t, out.String(), "Usage:")
}

func Test_commandLine_install(t *testing.T) {
	cli, out := setup(t)

	require.NoError(t, cli.run([]string{"quizadmin", "install"}))
	assert.Contains(t, out.String(), "installed")

	err := cli.run([]string{"quizadmin", "install"})
	assert.EqualError(t, err, "App already installed")
}

func Test_commandLine_resetpassword(t *testing.T) {
	cli, _ := setup(t)
	usr := testutil.CreateUser(t, cli.db, "jane@school.test", constants.UserTypeTeacher)

	pwd := ""
	readPasswordFunc = func() ([]byte, error) {
		if pwd == "fail" {
			return nil, errors.New("terminal gone")
		}
		return []byte(pwd), nil
	}

	tests := []struct {
		cliTest
		pwd string
	}{
		{cliTest: cliTest{name: "no email", args: []string{"resetpassword"}, wantErr: errHelp}},
		{cliTest: cliTest{name: "unknown flag", args: []string{"resetpassword", "-lol"}, wantErrStr: "flag provided but not defined"}},
		{cliTest: cliTest{name: "empty password", args: []string{"resetpassword", "-email", usr.Email}, wantErr: errHelp}},
		{cliTest: cliTest{name: "prompt fails", args: []string{"resetpassword", "-email", usr.Email}, wantErrStr: "terminal gone"}, pwd: "fail"},
		{cliTest: cliTest{name: "unknown user", args: []string{"resetpassword", "-email", "lol@school.test"}, wantErrStr: "record not found"}, pwd: "pass"},
		{cliTest: cliTest{name: "success", args: []string{"resetpassword", "-email", usr.Email}}, pwd: "n3wP@ss"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pwd = tt.pwd
			tt.check(t, cli.run(append([]string{"quizadmin"}, tt.args...)))
		})
	}

	got, err := authRepo.FindUserByID(context.Background(), cli.db, usr.ID)
	require.NoError(t, err)
	assert.True(t, helperAuth.CheckPasswordHash(got.Password, "n3wP@ss"))
}

func Test_commandLine_cleantokens(t *testing.T) {
	cli, out := setup(t)
	usr := testutil.CreateUser(t, cli.db, "jane@school.test", constants.UserTypeStudent)
	require.NoError(t, cli.db.Create(&authModel.RefreshTokenModel{
		UserID: usr.ID, Token: "old", Valid: true, ExpiresAt: time.Now().Add(-72 * time.Hour),
	}).Error)

	require.NoError(t, cli.run([]string{"quizadmin", "cleantokens"}))
	assert.Contains(t, out.String(), "removed 1 refresh tokens")
}
