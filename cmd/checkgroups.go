package cmd

import (
	"fmt"

	"qactl/internal/actiongroup"
	"qactl/internal/color"
	"qactl/internal/config"

	"github.com/spf13/cobra"
)

func newCheckGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-groups",
		Short: "Validate action groups against the plugin inventory",
		Long: `Checks that the declared action groups and the plugin inventory
agree: every item matching a group's pattern either declares the group's
required attribute or is explicitly excluded, every exclusion still matches
the pattern and refers to an existing item, and no item declares a group
attribute without matching the group. All inconsistencies are reported; any
finding makes the command fail.`,
		RunE: runCheckGroups,
	}
}

func runCheckGroups(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	groups, err := cfg.Groups()
	if err != nil {
		return err
	}
	inventory := cfg.InventoryItems()

	errs := actiongroup.Validate(groups, inventory)
	if len(errs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), color.SuccessStyle.Render("action groups OK"))
		return nil
	}

	for _, verr := range errs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
			color.ErrorStyle.Render("ERROR:"), verr.Error())
	}
	plural := "s"
	if len(errs) == 1 {
		plural = ""
	}
	return fmt.Errorf("%d action group validation error%s", len(errs), plural)
}
