package escape

import (
	"fmt"
	"os"
	"strings"

	"github.com/Kirov7/CouloyIO"
	"github.com/Kirov7/CouloyIO/cmd/root"
	"github.com/Kirov7/CouloyIO/driver"
	"github.com/spf13/cobra"
)

var escapeCmd = &cobra.Command{
	Use:   "escape [text...]",
	Short: "Print each character as its single-quoted escaped literal",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}
		out := driver.WrapFileIO(os.Stdout)
		for _, r := range strings.Join(args, " ") {
			if _, err := CouloyIO.WriteEncodedRune(out, r); err != nil {
				fmt.Fprintf(os.Stderr, "Unable to write literal: %v \n", err)
				os.Exit(1)
			}
			out.Write([]byte{' '})
		}
		out.Write([]byte{'\n'})
	},
}

func init() {
	root.AddCommand(escapeCmd)
}
