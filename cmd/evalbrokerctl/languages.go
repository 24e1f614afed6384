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
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newLanguagesCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the catalogue's registered languages, backend kind and effective timeout",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadCatalogue(flags)
			if err != nil {
				return err
			}

			langs := svc.Languages()
			sort.Slice(langs, func(i, j int) bool { return langs[i].Name() < langs[j].Name() })

			out := cmd.OutOrStdout()
			for _, l := range langs {
				fmt.Fprintf(out, "%-20s %-12s timeout=%ds\n", l.Name(), l.Kind(), l.Timeout())
			}

			return nil
		},
	}
}
