// Package cmd implements the command-line interface for streamsan.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamsan-cli/streamsan/color"
	"github.com/streamsan-cli/streamsan/constant"
	"github.com/streamsan-cli/streamsan/icon"
	"github.com/streamsan-cli/streamsan/key"
	"github.com/streamsan-cli/streamsan/log"
	"github.com/streamsan-cli/streamsan/mini"
	"github.com/streamsan-cli/streamsan/provider"
	"github.com/streamsan-cli/streamsan/style"
	"github.com/streamsan-cli/streamsan/util"
	"github.com/streamsan-cli/streamsan/version"
	"github.com/streamsan-cli/streamsan/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().StringP("search", "s", "", "Skip the main menu and search for a title right away")

	rootCmd.PersistentFlags().StringP("icons", "I", "plain", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	// Flag defaults mirror the config defaults: an unchanged flag's default
	// still outranks viper.SetDefault.
	rootCmd.PersistentFlags().StringP("provider", "p", "piratebay", "Primary torrent index to search")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("provider", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, p := range provider.Builtins() {
			names = append(names, p.Name)
		}

		return names, cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.ProvidersPrimary, rootCmd.PersistentFlags().Lookup("provider")))

	rootCmd.PersistentFlags().IntP("min-seeders", "m", 5, "Discard candidates with fewer seeders")
	lo.Must0(viper.BindPFlag(key.FilterMinSeeders, rootCmd.PersistentFlags().Lookup("min-seeders")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Clean up stale temporary artifacts on startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the streamsan application.
var rootCmd = &cobra.Command{
	Use:   constant.Streamsan,
	Short: "A minimalist command-line interface for streaming movies and shows",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A minimalist command-line interface for streaming movies and shows"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies()

		options := mini.Options{
			Query: lo.Must(cmd.Flags().GetString("search")),
		}
		handleErr(mini.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
