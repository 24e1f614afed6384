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
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/nabbar/evalbroker/catalog"
	"github.com/nabbar/evalbroker/logger"
	"github.com/nabbar/evalbroker/logger/level"
	"github.com/spf13/cobra"
)

// serveRequest is one line of the stdio protocol an adapter process (IRC
// bot, Telegram bot, ...) speaks to drive evaluations without linking the
// broker's Go API directly.
type serveRequest struct {
	Language string  `json:"language"`
	Code     string  `json:"code"`
	Context  string  `json:"context"`
	Timeout  *uint32 `json:"timeout"`
}

type serveResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func newServeCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Read newline-delimited JSON evaluation requests from stdin, write responses to stdout",
		Long: "serve is the broker's adapter-facing loop: each stdin line is a JSON " +
			"{language, code, context, timeout} request, each stdout line is a JSON " +
			"{result} or {error} response. Front-end protocols (IRC, Telegram, ...) " +
			"are expected to live in a separate adapter process that speaks this " +
			"line protocol.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadCatalogue(flags)
			if err != nil {
				return err
			}

			return serveLoop(cmd.InOrStdin(), cmd.OutOrStdout(), svc)
		},
	}

	return cmd
}

func serveLoop(in io.Reader, out io.Writer, svc *catalog.EvalService) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	enc := json.NewEncoder(out)

	for scanner.Scan() {
		var req serveRequest
		if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
			_ = enc.Encode(serveResponse{Error: err.Error()})
			continue
		}

		handleServeRequest(enc, svc, req)
	}

	return scanner.Err()
}

func handleServeRequest(enc *json.Encoder, svc *catalog.EvalService, req serveRequest) {
	lang, ok := svc.Get(req.Language)
	if !ok {
		err := ErrorLanguageNotFound.Error(fmt.Errorf("language %q", req.Language))
		_ = enc.Encode(serveResponse{Error: err.Error()})
		return
	}

	out, err := lang.Eval(context.Background(), req.Timeout, []byte(req.Context), req.Code)
	if err != nil {
		logger.Default().NewEntry(level.WarnLevel, "evaluation transport failure").
			FieldAdd("language", req.Language).
			ErrorAdd(err).
			Log()
		_ = enc.Encode(serveResponse{Error: err.Error()})
		return
	}

	_ = enc.Encode(serveResponse{Result: out})
}
