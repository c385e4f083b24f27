package cmd

import (
	"encoding/json"
	"fmt"

	"qactl/internal/color"
	"qactl/internal/config"

	"github.com/spf13/cobra"
)

var sessionsJSON bool

func newSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions [session...]",
		Short: "Resolve the session execution list",
		Long: `Resolves the named sessions (or the default sessions when none
are named) against the configured session registry: dependencies are
expanded depth-first and placed before their dependents, duplicates are
removed, and the resulting order is deterministic. The ordered list is what
the execution driver runs, one external tool sequence per session.`,
		RunE: runSessions,
	}

	cmd.Flags().BoolVar(&sessionsJSON, "json", false, "print the resolved session names as a JSON array")

	return cmd
}

func runSessions(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	registry, err := cfg.SessionRegistry()
	if err != nil {
		return err
	}

	resolved, err := registry.Resolve(args)
	if err != nil {
		return err
	}

	if sessionsJSON {
		names := make([]string, 0, len(resolved))
		for _, s := range resolved {
			names = append(names, s.Name)
		}
		data, err := json.Marshal(names)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		color.HeadingStyle.Render("sessions"),
		color.MutedStyle.Render(fmt.Sprintf("(%d)", len(resolved))))
	for _, s := range resolved {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n",
			s.Name, color.MutedStyle.Render(fmt.Sprintf("[%s]", s.Group)))
	}
	return nil
}
