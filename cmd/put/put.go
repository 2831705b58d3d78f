package put

import (
	"fmt"
	"io"
	"os"

	"github.com/Kirov7/CouloyIO"
	"github.com/Kirov7/CouloyIO/cmd/root"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configFile string
var cmdData string
var cmdNoTruncate, cmdStrict, cmdLock *bool
var cmdPerm *uint32

var putCmd = &cobra.Command{
	Use:   "put [file]",
	Short: "Write the whole buffer to a file in one shot",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if configFile != "" {
			viper.SetConfigFile(configFile)

			err := viper.ReadInConfig()
			if err != nil {
				fmt.Printf("Unable to read configuration file: %s, please check whether the path is correct \n", configFile)
				os.Exit(1)
			}
		} else {
			viper.Set("put.truncate", !*cmdNoTruncate)
			viper.Set("put.strict", *cmdStrict)
			viper.Set("put.lock", *cmdLock)
			viper.Set("put.perm", *cmdPerm)
		}

		data := []byte(cmdData)
		if len(data) == 0 {
			stdin, err := io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Printf("Unable to read from stdin: %v \n", err)
				os.Exit(1)
			}
			data = stdin
		}

		opt := CouloyIO.WriteOptions{
			Truncate: viper.GetBool("put.truncate"),
			Strict:   viper.GetBool("put.strict"),
			Lock:     viper.GetBool("put.lock"),
			Perm:     os.FileMode(viper.GetUint32("put.perm")),
		}
		if ok := CouloyIO.WriteEntireFileWithOptions(args[0], data, opt); !ok {
			fmt.Printf("Unable to write file: %s \n", args[0])
			os.Exit(1)
		}
	},
}

func init() {
	putCmd.Flags().StringVarP(&configFile, "cpath", "f", "", "Path of the configuration file in yaml, json and toml format (optional)")
	putCmd.Flags().StringVarP(&cmdData, "data", "d", "", "Bytes to write, stdin is used when empty")
	cmdNoTruncate = putCmd.Flags().BoolP("no-truncate", "", false, "Keep existing content beyond the written range")
	cmdStrict = putCmd.Flags().BoolP("strict", "", false, "Loop until the whole buffer is committed instead of trusting one write")
	cmdLock = putCmd.Flags().BoolP("lock", "", false, "Hold an exclusive file lock for the duration of the write")
	cmdPerm = putCmd.Flags().Uint32P("perm", "", 0644, "Permission bits applied when the file is created")

	root.AddCommand(putCmd)
}
