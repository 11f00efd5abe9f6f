// Command visinfo is a small demonstration CLI over the vis façade: it
// parses a GmodPath or LocalId string against reference data loaded
// from a directory of JSON files and prints the result's short and
// full forms. It carries no behavior beyond what vis already provides —
// the library is the spec's scope, this is wiring around it.
package main

import (
	"fmt"
	"os"

	"github.com/dnv-opensource/vista-sdk-go/vis"
	"github.com/spf13/cobra"
)

func main() {
	var dataDir string
	var version string

	rootCmd := &cobra.Command{
		Use:           "visinfo",
		Short:         "Inspect and convert VIS identifiers against loaded reference data",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", ".", "directory holding <kind>-<version>.json reference-data files")

	pathCmd := &cobra.Command{
		Use:   "path <short-form>",
		Short: "Parse a GmodPath short form and print its full form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := vis.New(vis.WithSource(newFileSource(dataDir)), vis.WithSnapshotCaching())
			ver, ok := vis.ParseVersionTag(version)
			if !ok {
				return fmt.Errorf("unknown VIS version %q", version)
			}

			p, errs, err := registry.ParseGmodPath(args[0], ver)
			if err != nil {
				return err
			}
			if errs.HasErrors() {
				return fmt.Errorf("invalid path:\n%s", errs.Error())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "short: %s\nfull:  %s\n", p.String(), p.ToFullPathString())
			return nil
		},
	}
	pathCmd.Flags().StringVar(&version, "version", "", "VIS version tag, e.g. 3-9a")
	_ = pathCmd.MarkFlagRequired("version")

	localidCmd := &cobra.Command{
		Use:   "localid <wire-form>",
		Short: "Parse a LocalId wire form and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := vis.New(vis.WithSource(newFileSource(dataDir)), vis.WithSnapshotCaching())

			id, errs, err := registry.ParseLocalId(args[0])
			if err != nil {
				return err
			}
			if errs.HasErrors() {
				return fmt.Errorf("invalid local id:\n%s", errs.Error())
			}

			fmt.Fprintln(cmd.OutOrStdout(), id.String())
			return nil
		},
	}

	var toVersion string
	convertCmd := &cobra.Command{
		Use:   "convert <wire-form>",
		Short: "Convert a LocalId to another VIS version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := vis.New(vis.WithSource(newFileSource(dataDir)), vis.WithSnapshotCaching())

			target, ok := vis.ParseVersionTag(toVersion)
			if !ok {
				return fmt.Errorf("unknown VIS version %q", toVersion)
			}

			id, errs, err := registry.ParseLocalId(args[0])
			if err != nil {
				return err
			}
			if errs.HasErrors() {
				return fmt.Errorf("invalid local id:\n%s", errs.Error())
			}

			converted, err := registry.ConvertLocalId(id, target)
			if err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), converted.String())
			return nil
		},
	}
	convertCmd.Flags().StringVar(&toVersion, "to", "", "target VIS version tag, e.g. 3-9a")
	_ = convertCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(pathCmd, localidCmd, convertCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
