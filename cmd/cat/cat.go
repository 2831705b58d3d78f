package cat

import (
	"fmt"
	"os"

	"github.com/Kirov7/CouloyIO"
	"github.com/Kirov7/CouloyIO/cmd/root"
	"github.com/Kirov7/CouloyIO/public"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var catCmd = &cobra.Command{
	Use:   "cat [file...]",
	Short: "Print entire files to stdout",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}

		// files are read concurrently but printed in argument order
		contents := make([][]byte, len(args))
		g := new(errgroup.Group)
		g.SetLimit(public.Platform.CoreCount)
		for i, path := range args {
			i, path := i, path
			g.Go(func() error {
				data, ok := CouloyIO.ReadEntireFile(path)
				if !ok {
					return fmt.Errorf("unable to read file: %s", path)
				}
				contents[i] = data
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, data := range contents {
			os.Stdout.Write(data)
		}
	},
}

func init() {
	root.AddCommand(catCmd)
}
