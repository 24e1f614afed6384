/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package main

import (
	"github.com/nabbar/evalbroker/catalog"
	"github.com/nabbar/evalbroker/logger"
	"github.com/nabbar/evalbroker/logger/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootFlags holds the persistent flag values shared by every subcommand,
// bound through viper so EVALBROKER_* environment variables can override
// them too.
type rootFlags struct {
	configFile string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "evalbrokerctl",
		Short:         "Drive a code-evaluation broker catalogue",
		Long:          "evalbrokerctl loads a declarative language catalogue and dispatches evaluations against it, either one-shot or over a stdio serving loop.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags.configFile = v.GetString("config")
			flags.logLevel = v.GetString("log-level")

			lvl := level.Parse(flags.logLevel)
			logger.SetDefault(logger.New(lvl))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "path to the catalogue TOML file")
	cmd.PersistentFlags().StringVarP(&flags.logLevel, "log-level", "l", "info", "log level: "+joinLevels())

	_ = v.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))
	v.SetEnvPrefix("EVALBROKER")
	v.AutomaticEnv()

	cmd.AddCommand(
		newEvalCommand(flags),
		newServeCommand(flags),
		newLanguagesCommand(flags),
		newDefaultConfigCommand(flags),
	)

	return cmd
}

func joinLevels() string {
	out := ""
	for i, l := range level.ListLevels() {
		if i > 0 {
			out += "|"
		}
		out += l
	}
	return out
}

func loadCatalogue(flags *rootFlags) (*catalog.EvalService, error) {
	return catalog.FromFile(flags.configFile)
}
