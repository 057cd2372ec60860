// Copyright 2025 The contractabi Authors
// This file is part of the contractabi library.
//
// The contractabi library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The contractabi library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the contractabi library. If not, see <http://www.gnu.org/licenses/>.

// abitool inspects contract ABI documents: it lists canonical signatures,
// resolves overloaded calls and packs or unpacks calldata.
package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/tidwall/pretty"
	"github.com/urfave/cli/v2"

	"github.com/w3forge/contractabi/abi"
	"github.com/w3forge/contractabi/common/hexutil"
)

var log = newLogger()

func newLogger() zerolog.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

var (
	abiFlag = &cli.StringFlag{
		Name:     "abi",
		Usage:    "path to the contract ABI JSON document",
		Required: true,
	}
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "dump intermediate values while processing",
	}
)

func main() {
	app := &cli.App{
		Name:  "abitool",
		Usage: "inspect contract ABI documents",
		Flags: []cli.Flag{verboseFlag},
		Before: func(ctx *cli.Context) error {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if ctx.Bool(verboseFlag.Name) {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "signatures",
				Usage:  "list the canonical signatures, selectors and event topics",
				Flags:  []cli.Flag{abiFlag},
				Action: signaturesCommand,
			},
			{
				Name:      "resolve",
				Usage:     "resolve a call to the matching function overload",
				ArgsUsage: "<function> [json-arg ...]",
				Flags:     []cli.Flag{abiFlag},
				Action:    resolveCommand,
			},
			{
				Name:      "encode",
				Usage:     "pack a call into calldata",
				ArgsUsage: "<function> [json-arg ...]",
				Flags:     []cli.Flag{abiFlag},
				Action:    encodeCommand,
			},
			{
				Name:      "decode",
				Usage:     "unpack calldata against a function's inputs",
				ArgsUsage: "<function> <calldata-hex>",
				Flags:     []cli.Flag{abiFlag},
				Action:    decodeCommand,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("abitool failed")
		os.Exit(1)
	}
}

func loadABI(ctx *cli.Context) (abi.ContractABI, error) {
	path := ctx.String(abiFlag.Name)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	contractABI, err := abi.ParseJSON(f)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("entries", len(contractABI)).Msg("loaded contract ABI")
	return contractABI, nil
}

func signaturesCommand(ctx *cli.Context) error {
	contractABI, err := loadABI(ctx)
	if err != nil {
		return err
	}
	for _, entry := range contractABI {
		switch entry.Type {
		case abi.Function:
			selector := abi.Selector(entry)
			fmt.Printf("function  %-10s  %s\n", hexutil.Encode(selector[:]), abi.Signature(entry))
		case abi.Event:
			fmt.Printf("event     %s  %s\n", abi.EventTopic(entry), abi.Signature(entry))
		case abi.ErrorDef:
			selector := abi.Selector(entry)
			fmt.Printf("error     %-10s  %s\n", hexutil.Encode(selector[:]), abi.Signature(entry))
		}
	}
	return nil
}

func resolveCommand(ctx *cli.Context) error {
	contractABI, name, args, err := callArguments(ctx)
	if err != nil {
		return err
	}
	entry, err := abi.FindMatchingFunction(contractABI, name, args, nil)
	if err != nil {
		return err
	}
	out, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", pretty.Pretty(out))
	return nil
}

func encodeCommand(ctx *cli.Context) error {
	contractABI, name, args, err := callArguments(ctx)
	if err != nil {
		return err
	}
	entry, err := abi.FindMatchingFunction(contractABI, name, args, nil)
	if err != nil {
		return err
	}
	log.Debug().Str("signature", abi.Signature(*entry)).Msg("resolved overload")

	merged, err := abi.MergeArguments(*entry, args, nil)
	if err != nil {
		return err
	}
	types, values, err := abi.FlattenInputs(*entry, merged)
	if err != nil {
		return err
	}
	if ctx.Bool(verboseFlag.Name) {
		tree, err := abi.DataTree(types, values)
		if err != nil {
			return err
		}
		spew.Fdump(os.Stderr, tree)
	}
	values, err = abi.MapABIData([]abi.Normalizer{abi.HexToBytes}, types, values)
	if err != nil {
		return err
	}
	data, err := abi.Encode(types, values)
	if err != nil {
		return err
	}
	selector := abi.Selector(*entry)
	fmt.Println(hexutil.Encode(append(selector[:], data...)))
	return nil
}

func decodeCommand(ctx *cli.Context) error {
	contractABI, err := loadABI(ctx)
	if err != nil {
		return err
	}
	if ctx.NArg() != 2 {
		return fmt.Errorf("decode needs a function name and calldata")
	}
	name := ctx.Args().Get(0)
	calldata, err := hexutil.Decode(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	candidates := abi.FilterByName(name, contractABI)
	for i := range candidates {
		entry := candidates[i]
		values, err := abi.DecodeWithSelector(entry, calldata)
		if err != nil {
			log.Debug().Err(err).Str("signature", abi.Signature(entry)).Msg("overload does not fit")
			continue
		}
		values, err = abi.MapABIData(
			append(abi.BaseReturnNormalizers, abi.BytesToHex),
			abi.InputTypes(entry), values,
		)
		if err != nil {
			return err
		}
		out, err := json.Marshal(map[string]interface{}{
			"signature": abi.Signature(entry),
			"values":    renderValues(values),
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", pretty.Pretty(out))
		return nil
	}
	return fmt.Errorf("calldata does not match any %q overload", name)
}

func callArguments(ctx *cli.Context) (abi.ContractABI, string, []interface{}, error) {
	contractABI, err := loadABI(ctx)
	if err != nil {
		return nil, "", nil, err
	}
	if ctx.NArg() < 1 {
		return nil, "", nil, fmt.Errorf("a function name is required")
	}
	name := ctx.Args().Get(0)
	args := make([]interface{}, 0, ctx.NArg()-1)
	for _, raw := range ctx.Args().Slice()[1:] {
		value, err := parseArgument(raw)
		if err != nil {
			return nil, "", nil, fmt.Errorf("bad argument %q: %w", raw, err)
		}
		args = append(args, value)
	}
	return contractABI, name, args, nil
}

// parseArgument reads one command line argument as JSON, falling back to a
// plain string for bare words. Numbers decode as big integers so full
// 256-bit values survive.
func parseArgument(raw string) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var value interface{}
	if err := dec.Decode(&value); err != nil {
		// bare addresses, hex strings and names arrive unquoted
		return raw, nil
	}
	return convertNumbers(value), nil
}

func convertNumbers(value interface{}) interface{} {
	switch v := value.(type) {
	case json.Number:
		if i, ok := new(big.Int).SetString(v.String(), 10); ok {
			return i
		}
		return v.String()
	case []interface{}:
		for i := range v {
			v[i] = convertNumbers(v[i])
		}
		return v
	case map[string]interface{}:
		for k := range v {
			v[k] = convertNumbers(v[k])
		}
		return v
	default:
		return value
	}
}

// renderValues makes decoded values JSON friendly: big integers to decimal
// strings, remaining byte slices to hex.
func renderValues(values []interface{}) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = renderValue(v)
	}
	return out
}

func renderValue(value interface{}) interface{} {
	switch v := value.(type) {
	case *big.Int:
		return v.String()
	case []byte:
		return hexutil.Encode(v)
	case []interface{}:
		return renderValues(v)
	case fmt.Stringer:
		return v.String()
	default:
		return value
	}
}
