package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/wlsc/accounts/pkg/client"
	"github.com/wlsc/accounts/pkg/config"
	"github.com/wlsc/accounts/pkg/domain/account"
	accountweb "github.com/wlsc/accounts/webapi/account"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  list
  create <id> <customerId> <amount> [currency] [locale]
  clear
  transfer <from> <to> <amount>

Environment:
  ACCOUNTS_URL          server base URL (default http://localhost:3000)
  ACCOUNTS_TIMEOUT      request timeout (default 10s)
  ACCOUNTS_API_VERSION  X-API-Version header to send (default 1)`

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed, color.Bold)
	headColor = color.New(color.Bold, color.Underline)
)

func main() {
	color.NoColor = color.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))

	c := client.New(
		config.GetEnv("ACCOUNTS_URL", "http://localhost:3000"),
		client.WithTimeout(config.GetEnvAsDuration("ACCOUNTS_TIMEOUT", 10*time.Second)),
		client.WithAPIVersion(config.GetEnv("ACCOUNTS_API_VERSION", "1")),
	)
	if err := run(context.Background(), c, os.Args[1:], os.Stdout); err != nil {
		errColor.Fprintln(os.Stderr, "Error:", err) //nolint:errcheck
		os.Exit(1)
	}
}

var errUsage = errors.New("invalid arguments")

func run(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(out, usage) //nolint:errcheck
		return errUsage
	}
	switch cmd, args := args[0], args[1:]; cmd {
	case "list":
		accounts, err := c.ListAccounts(ctx)
		if err != nil {
			return err
		}
		return printAccounts(out, accounts)
	case "create":
		if len(args) < 3 || len(args) > 5 {
			fmt.Fprintln(out, "Usage: create <id> <customerId> <amount> [currency] [locale]") //nolint:errcheck
			return errUsage
		}
		amount, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		a := accountweb.AccountDTO{
			ID:       args[0],
			Amount:   &amount,
			Customer: accountweb.CustomerDTO{ID: args[1]},
		}
		if len(args) > 3 {
			a.Currency = args[3]
		}
		if len(args) > 4 {
			a.Customer.Locale = args[4]
		}
		err = c.CreateAccount(ctx, a)
		if errors.Is(err, account.ErrAccountAlreadyExists) {
			warnColor.Fprintf(out, "Account %s already exists\n", a.ID) //nolint:errcheck
			return nil
		}
		if err != nil {
			return err
		}
		okColor.Fprintf(out, "Account %s created\n", a.ID) //nolint:errcheck
		return nil
	case "clear":
		if err := c.RemoveAll(ctx); err != nil {
			return err
		}
		okColor.Fprintln(out, "All accounts were removed") //nolint:errcheck
		return nil
	case "transfer":
		if len(args) != 3 {
			fmt.Fprintln(out, "Usage: transfer <from> <to> <amount>") //nolint:errcheck
			return errUsage
		}
		amount, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		err = c.Transfer(ctx, accountweb.TransferRequest{
			FromAccountID: args[0],
			ToAccountID:   args[1],
			Amount:        &amount,
		})
		if err != nil {
			return err
		}
		okColor.Fprintf(out, "Transferred %d from %s to %s\n", amount, args[0], args[1]) //nolint:errcheck
		return nil
	default:
		fmt.Fprintln(out, usage) //nolint:errcheck
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func printAccounts(out io.Writer, accounts []accountweb.AccountDTO) error {
	if len(accounts) == 0 {
		warnColor.Fprintln(out, "No accounts") //nolint:errcheck
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	headColor.Fprintln(w, "ID\tAMOUNT\tCURRENCY\tCUSTOMER\tLOCALE") //nolint:errcheck
	for _, a := range accounts {
		var amount int64
		if a.Amount != nil {
			amount = *a.Amount
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", a.ID, amount, a.Currency, a.Customer.ID, a.Customer.Locale) //nolint:errcheck
	}
	return w.Flush()
}
