package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "lewisnote",
	Short: "Lewis structure notation toolkit",
	Long:  "Lewisnote parses, validates, and reformats molecules written in the Lewis structure notation.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("LEWISNOTE")
	viper.AutomaticEnv()
}
