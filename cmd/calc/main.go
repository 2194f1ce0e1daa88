package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	calc "github.com/27saya/segundo-parcial-angel-arcos"
	"github.com/27saya/segundo-parcial-angel-arcos/internal/shell"
)

func main() {
	log.SetFlags(0)
	if err := newCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cobra.Command {
	v := viper.New()
	var cfgfile string
	cmd := &cobra.Command{
		Use:   "calc [flags] [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `calc evaluates arithmetic expressions with + - * / ^ (or **) and
parentheses. Each argument is evaluated as an expression. With no arguments,
calc reads expressions line by line; "history" lists past results and "exit"
quits.

Every flag can also be set in a config file (calc.yaml in the working or home
directory) or through an environment variable such as CALC_STRICT.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cfgfile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v, cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfgfile, "config", "", "config file")
	f.Bool("strict", false, "report malformed input instead of tolerating it")
	f.UintP("prec", "p", 0, "precision of calculations in bits (0 for float64)")
	f.Int("round", -1, "round results to this many decimal places (negative to disable)")
	f.String("fmt", "%g", "result formatting verb")
	f.Bool("trace", false, "print each operation as it is applied")
	f.Bool("echo", false, "print the tokens of each expression")
	f.Int("history", 0, "number of history entries to keep (0 for unlimited)")
	f.String("prompt", "> ", "prompt for interactive input")
	f.String("in", "", "input file (default stdin if no args given)")
	if err := v.BindPFlags(f); err != nil {
		panic(err)
	}
	return cmd
}

func loadConfig(v *viper.Viper, file string) error {
	v.SetEnvPrefix("calc")
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("calc")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &nf) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func run(v *viper.Viper, stdin io.Reader, stdout io.Writer, args []string) error {
	places := v.GetInt("round")
	cfg := shell.Config{
		Out:     stdout,
		History: v.GetInt("history"),
		Round:   places >= 0,
		Places:  places,
		Format:  v.GetString("fmt"),
		Trace:   v.GetBool("trace"),
		Echo:    v.GetBool("echo"),
		Options: []calc.Option{
			calc.Strict(v.GetBool("strict")),
			calc.Prec(v.GetUint("prec")),
		},
	}

	if len(args) > 0 {
		s := shell.New(cfg)
		failed := 0
		for _, arg := range args {
			if err := s.Eval(arg); err != nil {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d expressions failed", failed, len(args))
		}
		return nil
	}

	switch in := v.GetString("in"); in {
	case "", "-":
		cfg.In = stdin
		cfg.Prompt = v.GetString("prompt")
	default:
		f, err := os.Open(in)
		if err != nil {
			return err
		}
		defer f.Close()
		cfg.In = f
	}
	return shell.New(cfg).Run()
}
