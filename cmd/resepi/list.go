package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/resepi/internal/recipe"
)

func runList(cmd *cobra.Command, args []string) error {
	_, _, _, ctrl, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	if len(args) == 1 {
		ctrl.SetSearch(args[0])
	}
	v, err := ctrl.Snapshot(commandContext(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch listFormat {
	case "yaml":
		data, err := recipe.Encode(v.Filtered)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	case "text", "":
		for _, r := range v.Filtered {
			fmt.Fprintf(out, "%-16s %-24s %-8s ★ %.1f\n", r.ID, r.Name, r.Type.Label(), r.DisplayRating())
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", listFormat)
	}
}

func runIngredients(cmd *cobra.Command, args []string) error {
	_, _, _, ctrl, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	v, err := ctrl.Snapshot(commandContext(cmd))
	if err != nil {
		return err
	}
	for _, name := range v.Ingredients {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
