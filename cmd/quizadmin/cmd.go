package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/configs"
	database "schoolquiz_backend/internals/databases"
	installService "schoolquiz_backend/internals/features/app/install/service"
	scheduler "schoolquiz_backend/internals/features/users/auth/scheduler"
)

var (
	readPasswordFunc = func() ([]byte, error) { return term.ReadPassword(int(os.Stdin.Fd())) } // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db  *gorm.DB
	out io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  migrate                  - create or update every table")
	fmt.Fprintln(cli.out, "  install                  - create the default admin and levels")
	fmt.Fprintln(cli.out, "  resetpassword -email E   - set a user's password (prompted)")
	fmt.Fprintln(cli.out, "  cleantokens              - purge stale refresh tokens")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ContinueOnError)
	resetPasswordCmd.SetOutput(cli.out)
	resetPasswordEmail := resetPasswordCmd.String("email", "", "The user's email. The password will be prompted next.")

	switch args[1] {
	case "migrate":
		if err := database.AutoMigrate(cli.db.WithContext(ctx)); err != nil {
			return err
		}
		fmt.Fprintln(cli.out, "migrated")
		return nil

	case "install":
		fb := installService.NewInstallService(cli.db).InstallApp(ctx)
		if !fb.Success {
			return errors.New(fb.Message)
		}
		fmt.Fprintln(cli.out, fb.Message)
		return nil

	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordEmail == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc()
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(ctx, *resetPasswordEmail, string(pwd))

	case "cleantokens":
		ttl := configs.Conf.GetDuration("REFRESH_TOKEN_TTL_GRACE")
		n := scheduler.RunRefreshTokenCleanup(ctx, cli.db, time.Now().Add(-ttl))
		fmt.Fprintf(cli.out, "removed %d refresh tokens\n", n)
		return nil

	default:
		cli.printUsage()
		return errHelp
	}
}
