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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nabbar/evalbroker/catalog"
	"github.com/nabbar/evalbroker/internal/session"
	"github.com/spf13/cobra"
)

func newEvalCommand(flags *rootFlags) *cobra.Command {
	var (
		language string
		code     string
		ctxKey   string
		timeout  timeoutFlag
		noLimit  bool
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate one snippet against the loaded catalogue",
		Example: "evalbrokerctl eval --config catalogue.toml --language python --code 'print(1+1)'\n" +
			"evalbrokerctl eval --language ruby --context tg12345 --code 'puts 1'",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadCatalogue(flags)
			if err != nil {
				return err
			}

			lang, ok := svc.Get(language)
			if !ok {
				return ErrorLanguageNotFound.Error(fmt.Errorf("language %q", language))
			}

			if code == "" {
				raw, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				code = string(raw)
			}

			if ctxKey == "" {
				ctxKey = session.NewContextKey()
			}

			var timeoutPtr *uint32
			switch {
			case noLimit:
				timeoutPtr = &catalog.NoTimeout
			case timeout.set:
				timeoutPtr = &timeout.seconds
			}

			out, err := lang.Eval(context.Background(), timeoutPtr, []byte(ctxKey), code)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "catalogue language name (required)")
	cmd.Flags().StringVar(&code, "code", "", "snippet to evaluate (reads stdin if omitted)")
	cmd.Flags().StringVar(&ctxKey, "context", "", "opaque per-conversation context key (defaults to a generated demo key)")
	cmd.Flags().Var(&timeout, "timeout", "override timeout, extended duration notation (e.g. 5s, 2m, 1d12h)")
	cmd.Flags().BoolVar(&noLimit, "no-timeout", false, "disable the deadline entirely, overriding --timeout")
	_ = cmd.MarkFlagRequired("language")

	return cmd
}
