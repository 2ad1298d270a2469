// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qrcard generates QR codes with logos, portfolio cards and styled QR
// code sheets.
package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"

	"github.com/unixdj/qrcard"
	"github.com/unixdj/qrcard/card"
	"github.com/unixdj/qrcard/config"
	"github.com/unixdj/qrcard/logo"
)

var g = struct {
	typ     string // output type
	fn      string // output file
	cfg     string // config file
	level   string // correction level
	logo    string // logo file
	style   string // logo style
	shape   string // logo shape
	font    string // font file
	border  int    // quiet zone
	noLogo  bool   // no logo
	debug   bool   // debug logging
	quiet   bool   // errors only
	latin1  bool   // convert input to Latin-1
	upper   bool   // uppercase
	bg, fg  colour // colours
	outSeen bool   // -o given
}{
	cfg: "qrcard.yaml",
}

var log = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: "15:04:05",
	NoColor:    !isatty.IsTerminal(uintptr(syscall.Stderr)),
}).With().Timestamp().Logger()

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [url ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code card generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no URL is given, the configured one is used; "-" reads it from
standard input and strips the final newline.  Settings are read from
the config file, a .env file beside it and QRCARD_* variables; flags
override them.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrcard version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

// colour is a colour flag.
type colour struct {
	c   color.Color
	set bool
}

func (c *colour) String() string {
	if c.c == nil {
		return ""
	}
	r, g, b, a := c.c.RGBA()
	return fmt.Sprintf("%02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8)
}

func (c *colour) Set(s string, _ getopt.Option) error {
	v, err := config.ParseColor(s)
	if err != nil {
		return err
	}
	c.c, c.set = v, true
	return nil
}

// Output types.
const (
	typeQR         = "qr"
	typeCard       = "card"
	typeCollection = "collection"
	typePremium    = "premium"
	typeLogo       = "logo"
	typeLogos      = "logos"
	typeUTF8       = "utf8"
	typeASCII      = "ascii"
	typePBM        = "pbm"
)

var types = []string{
	typeQR, typeCard, typeCollection, typePremium, typeLogo, typeLogos,
	typeUTF8, typeASCII, typePBM,
}

var scale *uint64

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 6 or 8 hex digits or SVG colour name; `+
		`only for types qr and card`, "RGB[A]|name")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output; for type logos, the output directory`, "file")
	getopt.Flag(&g.cfg, 'c', "config file", "file")
	getopt.Flag(&g.level, 'l', "error correction level, "+
		"lowest to highest [configured, h]", "l|m|q|h")
	scale = getopt.Unsigned('s', 10,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 12}),
		`image pixels per QR module; ignored for types utf8 and ascii`,
		"scale")
	getopt.Flag(&g.border, 'm', `quiet zone modules [4]`, "margin")
	getopt.Flag(&g.logo, 'L', "logo image file; if missing or "+
		"unreadable, a logo is drawn", "file")
	getopt.Flag(&g.style, 'y', "style of the drawn logo, one of: "+
		strings.Join(logo.Styles(), ", "), "style")
	getopt.Flag(&g.shape, 'k', "mask for a logo file: "+
		"circle, rounded or none", "shape")
	getopt.Flag(&g.noLogo, 'n', "no logo")
	getopt.Flag(&g.font, 'f', "font file (TrueType or OpenType)", "file")
	getopt.Flag(&g.debug, 'd', "debug logging")
	getopt.Flag(&g.quiet, 'q', "log errors only")
	getopt.Flag(&g.latin1, '1', "convert the URL to Latin-1")
	getopt.Flag(&g.upper, 'i', `ignore case, convert the URL to uppercase`)
	ff := getopt.Enum('t', types, "", `output type, one of: `+
		strings.Join(types, ", ")+`; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise card`, "type")

	getopt.Parse()
	g.outSeen = fno.Seen()
	if *ff == "" {
		if !g.outSeen && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = typeUTF8
		} else {
			*ff = typeCard
		}
	}
	g.typ = *ff
	if g.debug && g.quiet {
		fmt.Fprintln(os.Stderr, "-d and -q are incompatible")
		usage()
	}
}

// settings loads the config and applies flags over it.
func settings() *config.Config {
	cfg, err := config.Load(g.cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	applyFlags(cfg, func(r rune) bool { return getopt.IsSet(r) })
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}
	lev, _ := cfg.LoggerLevel()
	switch {
	case g.debug:
		lev = zerolog.DebugLevel
	case g.quiet:
		lev = zerolog.ErrorLevel
	}
	log = log.Level(lev)
	return cfg
}

// applyFlags copies into cfg the flags for which isSet is true.
func applyFlags(cfg *config.Config, isSet func(rune) bool) {
	if isSet('l') {
		cfg.Level = g.level
	}
	if isSet('s') {
		cfg.Scale = int(*scale)
	}
	if isSet('m') {
		cfg.Border = g.border
	}
	if isSet('L') {
		cfg.Logo.Path = g.logo
	}
	if isSet('y') {
		cfg.Logo.Style = g.style
	}
	if isSet('k') {
		cfg.Logo.Shape = g.shape
	}
	if isSet('f') {
		cfg.Fonts.Regular = g.font
	}
}

// readURL returns the URL given by args.  With no args it is def; a
// lone "-" reads stdin and strips the final newline.
func readURL(args []string, stdin io.Reader, def string) (string, error) {
	switch {
	case len(args) == 0:
		return def, nil
	case len(args) == 1 && args[0] == "-":
		var b strings.Builder
		if _, err := io.Copy(&b, stdin); err != nil {
			return "", err
		}
		s, _ := strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
		return s, nil
	}
	return strings.Join(args, " "), nil
}

// transform applies -i and -1 to s.
func transform(s string, upper, latin1 bool) (string, error) {
	if upper {
		s = strings.ToUpper(s)
	}
	if latin1 {
		return charmap.ISO8859_1.NewEncoder().String(s)
	}
	return s, nil
}

func main() {
	parseFlags()
	cfg := settings()
	url, err := readURL(getopt.Args(), os.Stdin, cfg.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("reading standard input")
	}
	if url, err = transform(url, g.upper, g.latin1); err != nil {
		log.Fatal().Err(err).Msg("converting to Latin-1")
	}
	if url == "" {
		log.Fatal().Msg("empty URL")
	}
	start := time.Now()
	log.Debug().Str("type", g.typ).Str("url", url).Msg("generating")

	switch g.typ {
	case typeLogo, typeLogos:
		writeLogos(cfg)
	case typeUTF8, typeASCII, typePBM:
		writeText(encode(cfg, url))
	default:
		write(cfg, url)
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("done")
}

// encode encodes url with the settings in cfg.
func encode(cfg *config.Config, url string) *qrcard.Code {
	lev, _ := qrcard.ParseLevel(cfg.Level)
	c, err := qrcard.Encode(url, lev)
	if err != nil {
		log.Fatal().Err(err).Msg("encoding")
	}
	c.Scale, c.Border = cfg.Scale, cfg.Border
	bg, _ := config.ParseColor(cfg.Background)
	fg, _ := config.ParseColor(cfg.Foreground)
	if g.bg.set {
		bg = g.bg.c
	}
	if g.fg.set {
		fg = g.fg.c
	}
	c.Palette = &[2]color.Color{bg, fg}
	log.Debug().Int("version", c.Version).Stringer("level", lev).
		Int("modules", c.Size).Int("pixels", c.Pixels()).Msg("encoded")
	return c
}

func styleOptions(cfg *config.Config) card.StyleOptions {
	shape, _ := logo.ParseShape(cfg.Logo.Shape)
	return card.StyleOptions{
		Logo:     cfg.Logo.Path,
		LogoText: cfg.Logo.Text,
		LogoSize: cfg.Logo.Size,
		Shape:    shape,
		Font:     logoFont(cfg),
		NoLogo:   g.noLogo,
		Log:      log,
	}
}

func logoOptions(cfg *config.Config) logo.Options {
	style, _ := logo.ParseStyle(cfg.Logo.Style)
	shape, _ := logo.ParseShape(cfg.Logo.Shape)
	return logo.Options{
		Style: style,
		Shape: shape,
		Size:  cfg.Logo.Size,
		Text:  cfg.Logo.Text,
		Font:  logoFont(cfg),
		Log:   log,
	}
}

// logoFont returns the bold font, or the regular one if none is set.
func logoFont(cfg *config.Config) string {
	if cfg.Fonts.Bold != "" {
		return cfg.Fonts.Bold
	}
	return cfg.Fonts.Regular
}

// output returns the file to write to, or "" for standard output.
// Unless seen, fn is ignored and name is resolved against cfg.
func output(fn string, seen bool, cfg *config.Config, name string) string {
	if !seen {
		fn = cfg.Path(name)
	}
	if fn == "-" {
		return ""
	}
	return fn
}

// render draws the image of the selected type and returns it with its
// default file name.
func render(cfg *config.Config, url string) (image.Image, string) {
	so := styleOptions(cfg)
	shown := cfg.DisplayURL
	if shown == "" {
		shown = url
	}
	var (
		img image.Image
		err error
	)
	switch g.typ {
	case typeQR:
		style, _ := logo.ParseStyle(cfg.Logo.Style)
		return card.WithLogo(encode(cfg, url), style, so), cfg.Output.QR
	case typeCard:
		style, _ := logo.ParseStyle(cfg.Logo.Style)
		qr := card.WithLogo(encode(cfg, url), style, so)
		return card.Portfolio(qr, card.PortfolioText{
			Title:    cfg.Card.Title,
			Subtitle: cfg.Card.Subtitle,
			URL:      shown,
			Features: cfg.Card.Features,
		}, fonts(cfg)), cfg.Output.Card
	case typeCollection:
		img, err = card.Collection(url, cfg.Entries(), card.SheetText{
			Title:    cfg.Collection.Title,
			Subtitle: cfg.Collection.Subtitle,
			Footer:   cfg.Collection.Footer,
		}, fonts(cfg), so)
		if err == nil {
			return img, cfg.Output.Collection
		}
	case typePremium:
		img, err = card.Single(url, card.PremiumText{
			Title: cfg.Premium.Title,
			URL:   shown,
		}, fonts(cfg), so)
		if err == nil {
			return img, cfg.Output.Premium
		}
	}
	log.Fatal().Err(err).Str("type", g.typ).Msg("rendering")
	return nil, ""
}

func fonts(cfg *config.Config) card.Fonts {
	return card.LoadFonts(cfg.Fonts.Regular, logoFont(cfg))
}

func write(cfg *config.Config, url string) {
	img, name := render(cfg, url)
	fn := output(g.fn, g.outSeen, cfg, name)
	if fn == "" {
		refuseTTY()
		if err := qrcard.EncodePNG(os.Stdout, img); err != nil {
			log.Fatal().Err(err).Msg("writing standard output")
		}
		return
	}
	p, err := qrcard.Save(fn, img)
	if err != nil {
		log.Fatal().Err(err).Msg("saving")
	}
	log.Info().Str("path", p).Stringer("size", img.Bounds().Size()).
		Msg("saved")
}

func writeLogos(cfg *config.Config) {
	opts := logoOptions(cfg)
	if g.typ == typeLogos {
		dir := cfg.Output.Dir
		if g.outSeen {
			dir = g.fn
		}
		if _, err := logo.WriteSet(dir, opts); err != nil {
			log.Fatal().Err(err).Msg("writing logo set")
		}
		return
	}
	fn := output(g.fn, g.outSeen, cfg, cfg.Output.Logo)
	if fn == "" {
		refuseTTY()
		opts.Style = logo.Rings
		if err := qrcard.EncodePNG(os.Stdout, logo.Synthesize(opts)); err != nil {
			log.Fatal().Err(err).Msg("writing standard output")
		}
		return
	}
	p, err := logo.WriteSample(fn, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("writing logo")
	}
	log.Info().Str("path", p).Msg("created sample logo")
}

func writeText(c *qrcard.Code) {
	w := os.Stdout
	fn := ""
	if g.outSeen {
		fn = output(g.fn, true, nil, "")
	}
	if fn != "" {
		var err error
		if w, err = os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatal().Err(err).Msg("opening output")
		}
	} else if g.typ == typePBM {
		refuseTTY()
	}
	var err error
	switch g.typ {
	case typeUTF8:
		_, err = fmt.Fprint(w, c)
	case typeASCII:
		err = c.ASCII(w)
	case typePBM:
		err = c.EncodePBM(w)
	}
	if fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("writing")
	}
}

func refuseTTY() {
	if isatty.IsTerminal(uintptr(syscall.Stdout)) {
		log.Fatal().Str("type", g.typ).
			Msg("refusing to write binary output to a terminal")
	}
}
