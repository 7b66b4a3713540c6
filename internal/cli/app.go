package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MegaPintoos/Courses/internal/domain"
	"github.com/MegaPintoos/Courses/internal/infra/csvsource"
	"github.com/MegaPintoos/Courses/internal/infra/docstore"
	"github.com/MegaPintoos/Courses/internal/infra/logger"
	"github.com/MegaPintoos/Courses/internal/infra/mdlint"
	"github.com/MegaPintoos/Courses/internal/infra/projectconfig"
	"github.com/MegaPintoos/Courses/internal/ports"
	"github.com/MegaPintoos/Courses/internal/usecase"
)

// Persistent flag names shared by every command.
const (
	flagDataPath   = "data_path"
	flagReadmePath = "readme_path"
	flagConfig     = "config"
	flagStrict     = "strict"
	flagLogLevel   = "log-level"
	flagLogFormat  = "log-format"
	flagLogFile    = "log-file"
)

type appCtx struct {
	cfg domain.Config

	entries ports.EntrySource
	docs    ports.DocumentStore
	linter  ports.TableLinter
}

func (a *appCtx) request() usecase.Request {
	return usecase.Request{
		DataPath:   a.cfg.Paths.Data,
		ReadmePath: a.cfg.Paths.Readme,
		Strict:     a.cfg.Strict,
	}
}

// bootstrap resolves settings, sets up logging and wires the adapters.
// The returned cleanup must be called once the command is done.
func bootstrap(cmd *cobra.Command) (*appCtx, func(), error) {
	cfg, cfgPath, err := resolveConfig(cmd, projectconfig.NewFinder())
	if err != nil {
		return nil, nil, err
	}

	closeLog, err := logger.Setup(logger.Config{
		Writer: cmd.ErrOrStderr(),
		File:   cfg.Log.File,
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, nil, &domain.OpError{Op: "cli.logger", Kind: domain.KindInvalidConfig, Path: cfgPath, Err: err}
	}
	cleanup := func() { _ = closeLog() }

	logger.L().Debug("config.resolved",
		"config", cfgPath,
		"data", cfg.Paths.Data,
		"readme", cfg.Paths.Readme,
		"strict", cfg.Strict,
	)

	return &appCtx{
		cfg:     cfg,
		entries: csvsource.NewLoader(),
		docs:    docstore.NewStore(),
		linter:  mdlint.NewLinter(),
	}, cleanup, nil
}

// resolveConfig applies flag > config file > default. An explicit --config
// must exist; a discovered one is optional.
func resolveConfig(cmd *cobra.Command, locator ports.ConfigLocator) (domain.Config, string, error) {
	cfg := domain.DefaultConfig()
	flags := cmd.Flags()

	cfgPath, err := flags.GetString(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	cfgPath = strings.TrimSpace(cfgPath)

	if cfgPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return cfg, "", fmt.Errorf("get working directory: %w", err)
		}
		found, err := locator.FindConfig(wd)
		switch {
		case err == nil:
			cfgPath = found
		case !domain.IsKind(err, domain.KindNotFound):
			return cfg, "", err
		}
	}

	if cfgPath != "" {
		abs, err := filepath.Abs(cfgPath)
		if err != nil {
			return cfg, "", fmt.Errorf("invalid config path: %w", err)
		}
		cfgPath = abs

		cfg, err = projectconfig.Load(cfgPath)
		if err != nil {
			return cfg, "", err
		}
	}

	for name, dst := range map[string]*string{
		flagDataPath:   &cfg.Paths.Data,
		flagReadmePath: &cfg.Paths.Readme,
		flagLogLevel:   &cfg.Log.Level,
		flagLogFormat:  &cfg.Log.Format,
		flagLogFile:    &cfg.Log.File,
	} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return cfg, "", err
		}
		*dst = v
	}
	if flags.Changed(flagStrict) {
		v, err := flags.GetBool(flagStrict)
		if err != nil {
			return cfg, "", err
		}
		cfg.Strict = v
	}

	return cfg, cfgPath, nil
}
