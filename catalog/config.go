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

package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/nabbar/evalbroker/backend/exec"
	"github.com/nabbar/evalbroker/backend/persistent"
	"github.com/spf13/viper"
)

// rawLanguage mirrors one languages.<name> table of the configuration
// document. Exactly one backend discriminator must be set.
type rawLanguage struct {
	CodeBefore     string   `mapstructure:"code_before"`
	CodeAfter      string   `mapstructure:"code_after"`
	Timeout        *uint32  `mapstructure:"timeout"`
	Cmdline        []string `mapstructure:"cmdline"`
	TimeoutPrefix  string   `mapstructure:"timeout_prefix"`
	SocketAddr     string   `mapstructure:"socket_addr"`
	NetworkAddr    string   `mapstructure:"network_addr"`
	TimeoutCmdline []string `mapstructure:"timeout_cmdline"`
	MaxPayload     uint32   `mapstructure:"max_payload"`
}

type rawConfig struct {
	Timeout   uint32                 `mapstructure:"timeout"`
	Languages map[string]rawLanguage `mapstructure:"languages"`
}

// FromViper builds an EvalService from an already-populated viper instance.
func FromViper(v *viper.Viper) (*EvalService, error) {
	var raw rawConfig

	if err := v.Unmarshal(&raw); err != nil {
		return nil, ErrorCatalogueDecode.Error(err)
	}

	svc := newEvalService(raw.Timeout)

	for name, rl := range raw.Languages {
		lang, err := buildLanguage(name, rl, raw.Timeout)
		if err != nil {
			return nil, err
		}
		svc.insert(lang)
	}

	return svc, nil
}

// FromReader builds an EvalService from r, interpreted as configType (e.g.
// "toml").
func FromReader(r io.Reader, configType string) (*EvalService, error) {
	v := viper.New()
	v.SetConfigType(configType)

	if err := v.ReadConfig(r); err != nil {
		return nil, ErrorCatalogueRead.Error(err)
	}

	return FromViper(v)
}

// FromFile builds an EvalService from the TOML document at path.
func FromFile(path string) (*EvalService, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, ErrorCatalogueFile.Error(err)
	}

	return FromViper(v)
}

func buildLanguage(name string, rl rawLanguage, serviceTimeout uint32) (*Language, error) {
	timeout := serviceTimeout
	if rl.Timeout != nil {
		timeout = *rl.Timeout
	}

	kind, driver, err := buildDriver(name, rl)
	if err != nil {
		return nil, err
	}

	return &Language{
		name:       name,
		codeBefore: rl.CodeBefore,
		codeAfter:  rl.CodeAfter,
		timeout:    timeout,
		kind:       kind,
		driver:     driver,
		raw:        rl,
	}, nil
}

func buildDriver(name string, rl rawLanguage) (Kind, Driver, error) {
	discriminators := 0
	if len(rl.Cmdline) > 0 {
		discriminators++
	}
	if rl.SocketAddr != "" {
		discriminators++
	}
	if rl.NetworkAddr != "" {
		discriminators++
	}

	if discriminators != 1 {
		return "", nil, ErrorBackendDiscriminator.Error(fmt.Errorf("language %q", name))
	}

	switch {
	case len(rl.Cmdline) > 0:
		return KindExec, exec.New(rl.Cmdline, rl.TimeoutPrefix), nil

	case rl.SocketAddr != "":
		return KindUnixSocket, persistent.New("unix", rl.SocketAddr, rl.TimeoutCmdline, rl.MaxPayload), nil

	case rl.NetworkAddr != "":
		return KindNetwork, persistent.New("tcp", rl.NetworkAddr, rl.TimeoutCmdline, rl.MaxPayload), nil
	}

	return "", nil, ErrorBackendUnreachable.Error(fmt.Errorf("language %q", name))
}

// ToTOML serializes svc back into the same document shape FromViper/FromFile
// accept, for the round-trip property (serialize then re-parse yields an
// equivalent registry, modulo language ordering).
func ToTOML(svc *EvalService) string {
	var b strings.Builder

	fmt.Fprintf(&b, "timeout = %d\n\n", svc.DefaultTimeout())

	for _, l := range svc.Languages() {
		fmt.Fprintf(&b, "[languages.%s]\n", l.name)
		if l.codeBefore != "" {
			fmt.Fprintf(&b, "code_before = %q\n", l.codeBefore)
		}
		if l.codeAfter != "" {
			fmt.Fprintf(&b, "code_after = %q\n", l.codeAfter)
		}
		fmt.Fprintf(&b, "timeout = %d\n", l.timeout)

		switch l.kind {
		case KindExec:
			b.WriteString("cmdline = [")
			for i, a := range l.raw.Cmdline {
				if i > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%q", a)
			}
			b.WriteString("]\n")
			if l.raw.TimeoutPrefix != "" {
				fmt.Fprintf(&b, "timeout_prefix = %q\n", l.raw.TimeoutPrefix)
			}

		case KindUnixSocket:
			fmt.Fprintf(&b, "socket_addr = %q\n", l.raw.SocketAddr)
			writeTimeoutCmdline(&b, l.raw.TimeoutCmdline)
			if l.raw.MaxPayload != 0 {
				fmt.Fprintf(&b, "max_payload = %d\n", l.raw.MaxPayload)
			}

		case KindNetwork:
			fmt.Fprintf(&b, "network_addr = %q\n", l.raw.NetworkAddr)
			writeTimeoutCmdline(&b, l.raw.TimeoutCmdline)
			if l.raw.MaxPayload != 0 {
				fmt.Fprintf(&b, "max_payload = %d\n", l.raw.MaxPayload)
			}
		}

		b.WriteString("\n")
	}

	return b.String()
}

func writeTimeoutCmdline(b *strings.Builder, cmdline []string) {
	if len(cmdline) == 0 {
		return
	}

	b.WriteString("timeout_cmdline = [")
	for i, a := range cmdline {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%q", a)
	}
	b.WriteString("]\n")
}
