package cli

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	config "github.com/Keoroanthony/go-crm/configs"
	"github.com/Keoroanthony/go-crm/internal/db"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "crm",
		Short:         "Customer, product and order backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newMigrateCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// openDB loads the config and connects; callers close the returned DB.
func (o *rootOptions) openDB() (config.Config, *gorm.DB, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}

	gdb, err := db.Open(cfg.Database)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, gdb, nil
}
