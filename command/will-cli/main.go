// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/willd/chain"
	"github.com/bitmark-inc/willd/command/will-cli/configuration"
)

type metadata struct {
	file             string
	config           *configuration.Configuration
	save             bool
	testnet          bool
	verbose          bool
	connectionOffset int
	e                io.Writer
	w                io.Writer
}

// the willd selected for this run
func (m *metadata) connect() string {
	return m.config.Connections[m.connectionOffset]
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "will-cli"
	app.Usage = "request, validate and generate wills on a willd node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Testing,
			Usage: " connect to willd `NETWORK` [willd|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "Initialise will-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*willd host/IP and port, `HOST:PORT[,HOST:PORT...]`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "private-key, k",
					Value: "",
					Usage: " using existing hex private key `KEY`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "private-key, k",
					Value: "",
					Usage: " using existing hex private key `KEY`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " receive only identity for a verifier `ACCOUNT`",
				},
				cli.BoolFlag{
					Name:  "default",
					Usage: " make this the default identity",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "request",
			Usage:     "ask a verifier to validate a new will",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id",
					Value: "",
					Usage: " will `ID` (default is a new uuid)",
				},
				cli.StringFlag{
					Name:  "type, t",
					Value: "",
					Usage: "*will type `TYPE` e.g. \"Simple Will\"",
				},
				cli.StringFlag{
					Name:  "details, d",
					Value: "",
					Usage: "*will details `TEXT`",
				},
				cli.StringFlag{
					Name:  "verifier, r",
					Value: "",
					Usage: "*identity name or account of the verifier `ACCOUNT`",
				},
			},
			Action: runRequest,
		},
		{
			Name:      "validate",
			Usage:     "validate the beneficiaries of a will as its verifier",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id",
					Value: "",
					Usage: "*will `ID`",
				},
			},
			Action: runValidate,
		},
		{
			Name:      "generate-will",
			Usage:     "generate the final will as its verifier",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id",
					Value: "",
					Usage: "*will `ID`",
				},
			},
			Action: runGenerateWill,
		},
		{
			Name:      "live",
			Usage:     "display the current version of a will",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id",
					Value: "",
					Usage: "*will `ID`",
				},
			},
			Action: runLive,
		},
		{
			Name:      "get",
			Usage:     "display any stored version of a will",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "ref",
					Value: "",
					Usage: "*state reference `TXID:INDEX`",
				},
			},
			Action: runGet,
		},
		{
			Name:      "history",
			Usage:     "list every version of a will",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id",
					Value: "",
					Usage: "*will `ID`",
				},
			},
			Action: runHistory,
		},
		{
			Name:      "search",
			Usage:     "list stored will versions",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "status, s",
					Value: "unconsumed",
					Usage: " `STATUS` [unconsumed|consumed|all]",
				},
				cli.Uint64Flag{
					Name:  "start",
					Value: 0,
					Usage: " start point `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runSearch,
		},
		{
			Name:   "info",
			Usage:  "display will-cli status",
			Action: runInfo,
		},
		{
			Name:   "willdInfo",
			Usage:  "display willd status",
			Action: runWilldInfo,
		},
		{
			Name:  "version",
			Usage: "display will-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command || "h" == command {
			return nil
		}

		network, err := checkNetwork(c.GlobalString("network"))
		if nil != err {
			return err
		}
		testnet := chain.IsTesting(network)

		file, err := configurationFileName(app.Name, network)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		switch command {
		case "setup":
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				testnet: testnet,
				verbose: verbose,
				e:       e,
				w:       w,
			}

		case "generate":
			c.App.Metadata["config"] = &metadata{
				testnet: testnet,
				verbose: verbose,
				e:       e,
				w:       w,
			}

		default:
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			config, err := configuration.Load(file)
			if nil != err {
				return err
			}
			if config.TestNet != testnet {
				return fmt.Errorf("configuration: %q is not for network: %s", file, network)
			}
			if 0 == len(config.Connections) {
				return fmt.Errorf("configuration: %q has no connections", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:             file,
				config:           config,
				testnet:          config.TestNet,
				save:             false,
				verbose:          verbose,
				connectionOffset: rand.Intn(len(config.Connections)),
				e:                e,
				w:                w,
			}
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if m.verbose {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	return app
}

// $XDG_CONFIG_HOME/will-cli/<network>-will-cli.json
func configurationFileName(name string, network string) (string, error) {
	p := os.Getenv("XDG_CONFIG_HOME")
	if "" == p {
		return "", fmt.Errorf("XDG_CONFIG_HOME environment is not set")
	}
	dir, err := checkFileExists(p)
	if nil != err {
		return "", err
	}
	if !dir {
		return "", fmt.Errorf("not a directory: %q", p)
	}
	return path.Join(p, name, network+"-"+name+".json"), nil
}

// check if file exists and return whether it is a directory
func checkFileExists(name string) (bool, error) {
	info, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return info.IsDir(), nil
}
