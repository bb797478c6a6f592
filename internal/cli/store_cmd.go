package cli

import (
	"github.com/spf13/cobra"

	"github.com/canopymap/canopy/pkg/format/formats"
	"github.com/canopymap/canopy/pkg/store"
)

// newStoreCmd creates the store command group for managing named maps in
// the configured backend.
func newStoreCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage named maps in the configured backend",
		Long: `Manage named maps in the configured backend.

The backend (file, redis, mongo, memory) is chosen in the config file;
the file backend under ~/.config/canopy/maps/ is the default.`,
	}

	cmd.AddCommand(newStoreSaveCmd(configPath))
	cmd.AddCommand(newStoreLoadCmd(configPath))
	cmd.AddCommand(newStoreListCmd(configPath))
	cmd.AddCommand(newStoreDeleteCmd(configPath))

	return cmd
}

// withStore opens the configured backend, runs fn, and closes it.
func withStore(cmd *cobra.Command, configPath *string, fn func(st store.Store) error) error {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}

func newStoreSaveCmd(configPath *string) *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "save <name> <file>",
		Short: "Save a map file under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, configPath, func(st store.Store) error {
				m, err := formats.ReadFile(args[1], formatName)
				if err != nil {
					return err
				}
				if err := st.Save(cmd.Context(), args[0], m); err != nil {
					return err
				}
				printSuccess("Saved %s (%d nodes)", args[0], m.Len())
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "input format (default: by extension)")
	return cmd
}

func newStoreLoadCmd(configPath *string) *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "load <name> <file>",
		Short: "Load a named map into a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, configPath, func(st store.Store) error {
				m, err := st.Load(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if err := formats.WriteFile(m, args[1], formatName); err != nil {
					return err
				}
				printSuccess("Loaded %s", args[0])
				printFile(args[1])
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "output format (default: by extension)")
	return cmd
}

func newStoreListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored maps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, configPath, func(st store.Store) error {
				names, err := st.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(names) == 0 {
					printInfo("No stored maps")
					return nil
				}
				for _, name := range names {
					printKeyValue("map", name)
				}
				return nil
			})
		},
	}
}

func newStoreDeleteCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, configPath, func(st store.Store) error {
				if err := st.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				printSuccess("Deleted %s", args[0])
				return nil
			})
		},
	}
}
