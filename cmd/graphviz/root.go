package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "graphviz",
	Short: "DOT graph toolkit",
	Long:  "graphviz parses, validates, formats, and renders graphs written in a restricted subset of the DOT language.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("GRAPHVIZ")
	viper.AutomaticEnv()
}
