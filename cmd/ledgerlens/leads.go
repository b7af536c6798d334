package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakmoney/ledgerlens/internal/cli"
	"github.com/oakmoney/ledgerlens/internal/common"
)

func leadsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Manage captured opt-in leads",
	}
	cmd.AddCommand(leadsListCmd())
	return cmd
}

func leadsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List captured leads, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openLeadStore(cmd)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := db.Close(); closeErr != nil {
					common.LogError(closeErr, "Failed to close database", nil)
				}
			}()

			leads, err := db.ListLeads(cmd.Context())
			if err != nil {
				return err
			}
			if len(leads) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No leads captured yet."))
				return nil
			}

			for _, lead := range leads {
				fmt.Printf("%s  %-28s %-16s %s\n",
					lead.CreatedAt.Format("2006-01-02 15:04"),
					lead.Email, lead.Industry, lead.Name)
			}
			return nil
		},
	}
}
