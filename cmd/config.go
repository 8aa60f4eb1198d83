package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/openmc-go/xscore/xs"
)

var configPath string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate and print an xs.Config, or the built-in default",
	Run:   runConfig,
}

func init() {
	configCmd.Flags().StringVar(&configPath, "file", "", "path to a YAML xs.Config file (prints the default when omitted)")
}

func runConfig(cmd *cobra.Command, args []string) {
	var cfg xs.Config
	if configPath == "" {
		cfg = xs.DefaultConfig()
	} else {
		loaded, err := xs.LoadConfig(configPath)
		if err != nil {
			fmt.Println("invalid config:", err)
			return
		}
		cfg = *loaded
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Println("marshaling config:", err)
		return
	}
	fmt.Print(string(out))
}
