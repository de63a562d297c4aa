package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/kompox/pipeops/adapters/eventhub"
	"github.com/kompox/pipeops/internal/logging"
	"github.com/kompox/pipeops/usecase/action"
)

func newCmdAction() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "action",
		Short: "Collaboration platform application actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newCmdActionServe())
	return cmd
}

func newCmdActionServe() *cobra.Command {
	var addr, schemas, apiUser, templates string
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the event hub with a launch action for every project application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if apiUser == "" && cliEnv != nil {
				apiUser = cliEnv.Studio.APIUser
			}
			session, err := eventhub.LoadSession(schemas, apiUser)
			if err != nil {
				return err
			}
			if session.APIUser() == "" {
				return fmt.Errorf("api user is required (--api-user or studio.apiUser)")
			}
			u, err := buildActionUseCase(cmd, session, templates)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			ctx, cleanup := withCmdRunLogger(ctx, "action.serve", addr)
			defer func() { cleanup(err) }()

			hub := eventhub.NewLocal()
			out, err := u.RegisterAll(ctx, &action.RegisterAllInput{Hub: hub})
			if err != nil {
				return err
			}
			logging.FromContext(ctx).Info(ctx, "actions registered", "actions", out.Actions)
			return eventhub.NewServer(hub).Run(ctx, addr)
		},
	}
	c.Flags().StringVar(&addr, "addr", "127.0.0.1:8765", "Listen address")
	c.Flags().StringVar(&schemas, "schemas", "", "Platform session file with schemas and entities (YAML)")
	c.Flags().StringVar(&apiUser, "api-user", "", "API user whose discover events are answered (default studio.apiUser)")
	c.Flags().StringVar(&templates, "templates", "", "Studio templates directory (default studio.templates)")
	_ = c.MarkFlagRequired("schemas")
	return c
}
