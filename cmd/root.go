package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/GAMOps/gamops/config"
	"github.com/GAMOps/gamops/pkg/controller"
	"github.com/GAMOps/gamops/pkg/gamrun"
	"github.com/GAMOps/gamops/pkg/prompt"
	"github.com/GAMOps/gamops/pkg/utils"
)

var (
	policyFile string
	gamFlag    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "gamops",
	Short: `
 ██████╗  █████╗ ███╗   ███╗ ██████╗ ██████╗ ███████╗
██╔════╝ ██╔══██╗████╗ ████║██╔═══██╗██╔══██╗██╔════╝
██║  ███╗███████║██╔████╔██║██║   ██║██████╔╝███████╗
██║   ██║██╔══██║██║╚██╔╝██║██║   ██║██╔═══╝ ╚════██║
╚██████╔╝██║  ██║██║ ╚═╝ ██║╚██████╔╝██║     ███████║
 ╚═════╝ ╚═╝  ╚═╝╚═╝     ╚═╝ ╚═════╝ ╚═╝     ╚══════╝

Google Workspace provisioning workflows on top of the gam admin CLI:
shared drives, groups and offboarding.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&policyFile, "config", "", "policy file (default is $HOME/.gamops/policy.yaml)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().StringVar(&gamFlag, "gam", "", "Path to the gam binary (default is $GAM_PATH or ~/bin/gam7/gam)")
}

func initConfig() {
	if policyFile != "" && !utils.FileExists(policyFile) {
		utils.Log.Fatal("Invalid policy file path")
	}

	viper.AutomaticEnv() // read in environment variables that match

	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}

// workflowContext is cancelled by Ctrl-C or SIGTERM so a running gam
// command gets its graceful-shutdown window instead of an orphan.
func workflowContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func newRunner() *gamrun.Runner {
	return gamrun.New(config.GamPath(gamFlag), func(line string) {
		fmt.Println(line)
	})
}

// newController wires a workflow controller. Interactive commands need
// a real terminal; flag-driven ones pass a prompter of their own.
func newController(prompter prompt.Prompter) *controller.Controller {
	if prompter == nil {
		terminal, err := prompt.NewTerminal()
		if err != nil {
			utils.Log.Fatal(err)
		}
		prompter = terminal
	}
	return controller.New(newRunner(), prompter, config.LoadPolicy(policyFile))
}
