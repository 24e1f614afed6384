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
	"encoding/json"
	"sort"

	"github.com/spf13/cobra"
)

// languageSkeleton is one entry of the default-config JSON dump: enough to
// show an operator what a language record looks like without leaking the
// Driver interface.
type languageSkeleton struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Timeout uint32 `json:"timeout_seconds"`
}

func newDefaultConfigCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "default-config",
		Short: "Dump a JSON skeleton of the loaded catalogue, one entry per language",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadCatalogue(flags)
			if err != nil {
				return err
			}

			langs := svc.Languages()
			sort.Slice(langs, func(i, j int) bool { return langs[i].Name() < langs[j].Name() })

			skeleton := make([]languageSkeleton, 0, len(langs))
			for _, l := range langs {
				skeleton = append(skeleton, languageSkeleton{
					Name:    l.Name(),
					Kind:    string(l.Kind()),
					Timeout: l.Timeout(),
				})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(skeleton)
		},
	}
}
