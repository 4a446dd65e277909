package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "reduct",
	Short: "reduct computes the core and a reduct of a decision table",
	Long:  `Reads a csv decision table, computes the core attributes with the incremental partition algorithm and searches a reduct seeded with the core`,
}

func main() {
	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewVersionCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
