package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "CUTSCENE"

// App carries the output streams and settings shared by every command.
type App struct {
	Out io.Writer
	Err io.Writer

	v *viper.Viper
}

func NewApp(out, errOut io.Writer) *App {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &App{Out: out, Err: errOut, v: v}
}

func (app *App) Execute(args []string) error {
	root := newRootCommand(app)
	root.SetArgs(args)
	root.SetOut(app.Out)
	root.SetErr(app.Err)
	return root.Execute()
}

func newRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cutscene",
		Short: "Run and check the boss defeat sequence without a window",
		Long: `cutscene drives the boss defeat sequence headless.

Settings come from flags or CUTSCENE_* environment variables, e.g.
CUTSCENE_CONFIG=my_sequence.yaml cutscene simulate --door=false`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "sequence spec yaml (defaults to the embedded prefab)")
	_ = app.v.BindPFlag("config", root.PersistentFlags().Lookup("config"))

	root.AddCommand(newSimulateCommand(app))
	root.AddCommand(newValidateCommand(app))
	return root
}
