package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vinicius-lino-figueiredo/gedq/pkg/log"
)

const envPrefix = "GEDQ"

// Config keys, also used as persistent flag names.
const (
	keyConfig   = "config"
	keyLogLevel = "log-level"
	keyIndent   = "indent"
)

func newRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gedq",
		Short:         "Query JSON documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(v, cmd); err != nil {
				return err
			}
			log.SetLevel(v.GetString(keyLogLevel))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(keyConfig, "", "config file (yaml, toml or json)")
	flags.String(keyLogLevel, log.LevelWarn, "log level: debug, info, warn or error")
	flags.Bool(keyIndent, false, "indent JSON output")

	rootCmd.AddCommand(newQueryCmd(v))
	return rootCmd
}

// loadConfig merges, by priority, flags, GEDQ_* environment variables and the
// optional config file into v.
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if file := v.GetString(keyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}
