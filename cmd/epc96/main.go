/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Command epc96 converts between 96-bit EPC tag data, GS1 keys and EPC Pure
// Identity URIs.
//
//	epc96 decode 3034257BF7194E4000001A85
//	epc96 encode 01 00614141123452 6789 --prefix-len 7
//	epc96 urn urn:epc:id:sgtin:0614141.812345.6789
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/intel/rsp-sw-toolkit-im-suite-epccodec/epc"
	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"
)

var log = logging.Logger("epc96")

// Globals are the flags shared by every command.
type Globals struct {
	Filter   int    `short:"f" default:"1" env:"EPC96_FILTER" help:"Filter value written to encoded tags, 0 to 7."`
	LogLevel string `name:"log-level" default:"error" env:"EPC96_LOG_LEVEL" help:"Log level: debug, info, warn or error."`
	Strict   bool   `env:"EPC96_STRICT" help:"Reject GS1 keys whose check digit is wrong."`
}

func (g *Globals) filter() epc.FilterValue {
	fv := epc.FilterValue(g.Filter)
	if !fv.IsValid() {
		log.Warnf("filter %d is not a GS1 defined filter value", g.Filter)
	}
	return fv
}

// CLI defines the command-line interface for epc96.
type CLI struct {
	Globals

	Decode DecodeCmd `cmd:"" help:"Decode hex EPCs and print each as a JSON record."`
	Encode EncodeCmd `cmd:"" help:"Encode a GS1 key and serial as a hex EPC."`
	URN    URNCmd    `cmd:"" name:"urn" help:"Encode EPC Pure Identity URIs as hex EPCs."`
}

// DecodeCmd decodes tag data.
type DecodeCmd struct {
	EPCs []string `arg:"" name:"epc" help:"Hex encoded 96-bit EPCs, with or without a 0x prefix."`
}

func (c *DecodeCmd) Run(out io.Writer) error {
	enc := json.NewEncoder(out)
	for _, s := range c.EPCs {
		id, err := epc.DecodeString(s)
		if err != nil {
			return errors.WithMessagef(err, "decoding %q", s)
		}
		log.Debugf("decoded %s as %s", s, id.URI())
		if err := enc.Encode(id.Record()); err != nil {
			return errors.Wrap(err, "writing record")
		}
	}
	return nil
}

// EncodeCmd encodes a GS1 element string.
type EncodeCmd struct {
	AI        string `arg:"" name:"ai" help:"GS1 Application Identifier: 01 (GTIN), 00 (SSCC), 414 (GLN) or 8003 (GRAI)."`
	Code      string `arg:"" name:"code" help:"GS1 key, including its check digit."`
	Serial    string `arg:"" optional:"" help:"Serial number, or extension for a GLN. SSCCs don't use one."`
	PrefixLen int    `name:"prefix-len" short:"l" required:"" help:"Number of digits in the GS1 Company Prefix, 6 to 12."`
}

func (c *EncodeCmd) Run(g *Globals, out io.Writer) error {
	if g.Strict && !epc.ValidCheckDigit(c.Code) {
		return errors.Wrapf(epc.ErrMalformedKey, "%q has an incorrect check digit", c.Code)
	}

	req := epc.NewBarcodeRequest(c.AI, c.Code, c.Serial, c.PrefixLen)
	req.Filter = g.filter()
	u, err := req.URN()
	if err != nil {
		return err
	}
	log.Infof("AI (%s) %s is %s", c.AI, c.Code, u)

	hex, err := epc.EncodeBarcode(req)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, hex)
	return err
}

// URNCmd encodes Pure Identity URIs.
type URNCmd struct {
	URIs []string `arg:"" name:"uri" help:"EPC Pure Identity URIs, like urn:epc:id:sgtin:0614141.812345.6789."`
}

func (c *URNCmd) Run(g *Globals, out io.Writer) error {
	filter := g.filter()
	for _, uri := range c.URIs {
		hex, err := epc.EncodeURN(uri, filter)
		if err != nil {
			return errors.WithMessagef(err, "encoding %q", uri)
		}
		log.Debugf("encoded %s as %s", uri, hex)
		if _, err := fmt.Fprintln(out, hex); err != nil {
			return err
		}
	}
	return nil
}

// run parses args, configures logging, and runs the selected command, which
// writes its results to out.
func run(args []string, out io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("epc96"),
		kong.Description("Encode and decode 96-bit EPC tag data."),
		kong.UsageOnError(),
		kong.Writers(out, os.Stderr),
		kong.BindTo(out, (*io.Writer)(nil)),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	lvl, err := logging.LevelFromString(cli.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "bad log level %q", cli.LogLevel)
	}
	logging.SetAllLoggers(lvl)

	return ctx.Run(&cli.Globals)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Debugf("%+v", err)
		fmt.Fprintln(os.Stderr, "epc96:", err)
		os.Exit(1)
	}
}
