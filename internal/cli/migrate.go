package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Keoroanthony/go-crm/internal/db"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gdb, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close(gdb)

			if err := db.Migrate(gdb); err != nil {
				return err
			}

			log.Println("Database migrated successfully")
			return nil
		},
	}
}
