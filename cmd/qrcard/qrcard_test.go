// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/unixdj/qrcard/config"
)

func TestReadURL(t *testing.T) {
	for _, tt := range []struct {
		args  []string
		stdin string
		def   string
		want  string
	}{
		{nil, "", "https://example.com", "https://example.com"},
		{nil, "", "", ""},
		{[]string{"https://a.example"}, "", "https://b.example", "https://a.example"},
		{[]string{"hello", "world"}, "", "", "hello world"},
		{[]string{"-"}, "https://stdin.example\n", "", "https://stdin.example"},
		{[]string{"-"}, "https://stdin.example\r\n", "", "https://stdin.example"},
		{[]string{"-"}, "two\nlines\n\n", "", "two\nlines\n"},
		{[]string{"-"}, "no newline", "", "no newline"},
		{[]string{"-", "-"}, "ignored", "", "- -"},
	} {
		got, err := readURL(tt.args, strings.NewReader(tt.stdin), tt.def)
		if err != nil {
			t.Errorf("readURL(%q, %q): %v", tt.args, tt.stdin, err)
			continue
		}
		if got != tt.want {
			t.Errorf("readURL(%q, %q) = %q, want %q", tt.args, tt.stdin, got, tt.want)
		}
	}
	boom := errors.New("boom")
	if _, err := readURL([]string{"-"}, iotest.ErrReader(boom), ""); !errors.Is(err, boom) {
		t.Errorf("read error: got %v", err)
	}
}

func TestTransform(t *testing.T) {
	for _, tt := range []struct {
		in            string
		upper, latin1 bool
		want          string
	}{
		{"https://example.com", false, false, "https://example.com"},
		{"https://example.com", true, false, "HTTPS://EXAMPLE.COM"},
		{"café", false, true, "caf\xe9"},
		{"café", true, true, "CAF\xc9"},
	} {
		got, err := transform(tt.in, tt.upper, tt.latin1)
		if err != nil {
			t.Errorf("transform(%q, %v, %v): %v", tt.in, tt.upper, tt.latin1, err)
			continue
		}
		if got != tt.want {
			t.Errorf("transform(%q, %v, %v) = %q, want %q",
				tt.in, tt.upper, tt.latin1, got, tt.want)
		}
	}
	if _, err := transform("5 €", false, true); err == nil {
		t.Error("transform of non-Latin-1 text: no error")
	}
	if got, err := transform("5 €", false, false); err != nil || got != "5 €" {
		t.Errorf("transform without -1 = %q, %v", got, err)
	}
}

func TestOutput(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Dir = "out"
	for _, tt := range []struct {
		fn   string
		seen bool
		name string
		want string
	}{
		{"", false, "qr.png", filepath.Join("out", "qr.png")},
		{"ignored.png", false, "card.png", filepath.Join("out", "card.png")},
		{"mine.png", true, "qr.png", "mine.png"},
		{"-", true, "qr.png", ""},
		{"", false, "-", ""},
	} {
		if got := output(tt.fn, tt.seen, cfg, tt.name); got != tt.want {
			t.Errorf("output(%q, %v, %q) = %q, want %q",
				tt.fn, tt.seen, tt.name, got, tt.want)
		}
	}
	cfg.Output.Dir = ""
	if got := output("", false, cfg, "qr.png"); got != "qr.png" {
		t.Errorf("no output dir: %q", got)
	}
}

func TestColour(t *testing.T) {
	var c colour
	if s := c.String(); s != "" {
		t.Errorf("unset colour %q", s)
	}
	if err := c.Set("nope", nil); err == nil || c.set {
		t.Errorf("Set(nope) = %v, set %v", err, c.set)
	}
	for _, tt := range []struct{ in, want string }{
		{"#ff0000", "ff0000ff"},
		{"0f0", "00ff00ff"},
		{"navy", "000080ff"},
	} {
		if err := c.Set(tt.in, nil); err != nil {
			t.Errorf("Set(%q): %v", tt.in, err)
			continue
		}
		if !c.set || c.String() != tt.want {
			t.Errorf("Set(%q): %q set %v, want %q", tt.in, c.String(), c.set, tt.want)
		}
	}
}

func TestLogoFont(t *testing.T) {
	cfg := config.Default()
	if f := logoFont(cfg); f != "" {
		t.Errorf("no fonts: %q", f)
	}
	cfg.Fonts.Regular = "regular.ttf"
	if f := logoFont(cfg); f != "regular.ttf" {
		t.Errorf("regular only: %q", f)
	}
	if f := styleOptions(cfg).Font; f != "regular.ttf" {
		t.Errorf("styleOptions font %q", f)
	}
	if f := logoOptions(cfg).Font; f != "regular.ttf" {
		t.Errorf("logoOptions font %q", f)
	}
	cfg.Fonts.Bold = "bold.ttf"
	if f := logoFont(cfg); f != "bold.ttf" {
		t.Errorf("bold set: %q", f)
	}
}

// setFlags sets the flag globals for one test and restores them after.
func setFlags(t *testing.T, s uint64, set func()) {
	t.Helper()
	old, oldScale := g, scale
	t.Cleanup(func() { g, scale = old, oldScale })
	scale = &s
	set()
}

func TestApplyFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qrcard.yaml")
	if err := os.WriteFile(path, []byte("level: m\nscale: 6\nborder: 2\n"), 0666); err != nil {
		t.Fatal(err)
	}
	t.Setenv("QRCARD_LEVEL", "l")
	setFlags(t, 3, func() {
		g.level, g.border = "q", 1
		g.style, g.shape = "coffee", "rounded"
		g.logo, g.font = "me.png", "font.ttf"
	})

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	applyFlags(cfg, func(rune) bool { return false })
	if cfg.Level != "l" || cfg.Scale != 6 || cfg.Border != 2 {
		t.Errorf("no flags: level %q scale %d border %d", cfg.Level, cfg.Scale, cfg.Border)
	}

	applyFlags(cfg, func(r rune) bool { return strings.ContainsRune("lsmLykf", r) })
	if cfg.Level != "q" || cfg.Scale != 3 || cfg.Border != 1 {
		t.Errorf("flags: level %q scale %d border %d", cfg.Level, cfg.Scale, cfg.Border)
	}
	if cfg.Logo.Path != "me.png" || cfg.Logo.Style != "coffee" || cfg.Logo.Shape != "rounded" {
		t.Errorf("logo %+v", cfg.Logo)
	}
	if cfg.Fonts.Regular != "font.ttf" || logoFont(cfg) != "font.ttf" {
		t.Errorf("fonts %+v", cfg.Fonts)
	}
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}
}

func TestEmptyConfiguredURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qrcard.yaml")
	if err := os.WriteFile(path, []byte("url: \"\"\nlog_level: \"\"\n"), 0666); err != nil {
		t.Fatal(err)
	}
	t.Setenv("QRCARD_URL", "")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty configured url rejected: %v", err)
	}
	for _, tt := range []struct {
		args  []string
		stdin string
		want  string
	}{
		{[]string{"https://example.com"}, "", "https://example.com"},
		{[]string{"-"}, "https://stdin.example\n", "https://stdin.example"},
		{nil, "", ""},
	} {
		got, err := readURL(tt.args, strings.NewReader(tt.stdin), cfg.URL)
		if err != nil || got != tt.want {
			t.Errorf("readURL(%q) = %q, %v; want %q", tt.args, got, err, tt.want)
		}
	}
}
