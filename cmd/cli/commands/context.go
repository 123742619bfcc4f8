package commands

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sundialcare/careadmin/internal/config"
	"github.com/sundialcare/careadmin/pkg/clients/careapi"
	"github.com/sundialcare/careadmin/pkg/clients/gmailclient"
	"github.com/sundialcare/careadmin/pkg/clients/sheetsclient"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg          *config.Config
	CareClient   *careapi.Client
	SheetsClient *sheetsclient.Client
	GmailClient  *gmailclient.Client
	Logger       *zap.Logger
	Ctx          context.Context
}

const argDateLayout = "2006-01-02"

// parseDateRange parses from/to arguments in YYYY-MM-DD form
func parseDateRange(fromArg, toArg string) (time.Time, time.Time, error) {
	from, err := time.Parse(argDateLayout, fromArg)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from date %q (want YYYY-MM-DD): %w", fromArg, err)
	}
	to, err := time.Parse(argDateLayout, toArg)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to date %q (want YYYY-MM-DD): %w", toArg, err)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("to date %s is before from date %s", toArg, fromArg)
	}
	return from, to, nil
}
