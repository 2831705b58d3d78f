package root

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "kio",
	Short: "Dependable whole-buffer and whole-file operations over raw descriptors",
	Long:  `kio wraps short-read/short-write descriptor primitives with retry-until-satisfied reads, whole-file convenience calls and an escaped character literal writer.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	rootCmd.Execute()
}

func AddCommand(cmds ...*cobra.Command) {
	rootCmd.AddCommand(cmds...)
}
