package main

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/thobiasn/sieve/internal/filter"
)

func TestParseArgs(t *testing.T) {
	since := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		args    []string
		want    cliOptions
		wantErr bool
	}{
		{
			name: "no args",
			args: []string{},
			want: cliOptions{format: "args"},
		},
		{
			name: "seed current boot any source",
			args: []string{"--time", "current_boot", "--source", "all"},
			want: cliOptions{format: "args", seed: filter.Options{Time: filter.CurrentBoot{}, Source: filter.AllSources{}}},
		},
		{
			name: "unit implies source",
			args: []string{"--unit", "sshd.service"},
			want: cliOptions{format: "args", seed: filter.Options{Source: filter.Unit{Name: "sshd.service"}}},
		},
		{
			name: "dates seed",
			args: []string{"--time", "dates", "--since", "2024-03-01 08:00:00"},
			want: cliOptions{format: "args", seed: filter.Options{Time: filter.Dates{Since: since}}},
		},
		{
			name: "socket and toml",
			args: []string{"--socket", "/run/admin/filter.sock", "--format", "toml", "--lang", "de", "--debug"},
			want: cliOptions{socketPath: "/run/admin/filter.sock", format: "toml", lang: "de", debug: true},
		},
		{
			name: "config and run",
			args: []string{"--config", "/tmp/sieve.toml", "--run"},
			want: cliOptions{configPath: "/tmp/sieve.toml", format: "args", run: true},
		},
		{name: "unknown time", args: []string{"--time", "last_week"}, wantErr: true},
		{name: "unknown source", args: []string{"--source", "kernel"}, wantErr: true},
		{name: "bad since", args: []string{"--since", "yesterday"}, wantErr: true},
		{name: "unit and file", args: []string{"--unit", "a", "--file", "/b"}, wantErr: true},
		{name: "bad format", args: []string{"--format", "json"}, wantErr: true},
		{name: "run with socket", args: []string{"--run", "--socket", "/s"}, wantErr: true},
		{name: "positional", args: []string{"extra"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(*got, tt.want) {
				t.Errorf("got %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestParseStamp(t *testing.T) {
	got, err := parseStamp("2024-03-01T08:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("parseStamp = %v", got)
	}
}

func TestWriteResultArgs(t *testing.T) {
	var buf bytes.Buffer
	opts := filter.Confirm(filter.Options{Time: filter.PreviousBoot{}, Source: filter.Unit{Name: "sshd.service"}})
	if err := writeResult(&buf, opts, "args"); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "--boot=-1\n--unit=sshd.service\n" {
		t.Errorf("output = %q", got)
	}

	buf.Reset()
	if err := writeResult(&buf, filter.Confirm(filter.Options{Source: filter.AllSources{}}), "args"); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("all-open filter printed %q", buf.String())
	}
}

func TestWriteResultTOML(t *testing.T) {
	var buf bytes.Buffer
	opts := filter.Confirm(filter.Options{Time: filter.CurrentBoot{}, Source: filter.File{Path: "/usr/sbin/sshd"}})
	if err := writeResult(&buf, opts, "toml"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`time = "current_boot"`, `source = "file"`, `file = "/usr/sbin/sshd"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "unit") {
		t.Errorf("output has unit key:\n%s", out)
	}
}

func TestWriteResultTOMLNothingSelected(t *testing.T) {
	var buf bytes.Buffer
	if err := writeResult(&buf, filter.Confirm(filter.Options{}), "toml"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`time = ""`, `source = ""`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExitFor(t *testing.T) {
	cancel, empty := filter.Cancelled(), filter.Confirm(filter.Options{})
	unit := filter.Confirm(filter.Options{Source: filter.Unit{Name: "cron.service"}})
	tests := []struct {
		name   string
		result *filter.Result
		err    error
		want   int
	}{
		{"cancel", &cancel, nil, exitCancelled},
		{"confirm nothing selected", &empty, nil, exitConfirmed},
		{"confirm unit", &unit, nil, exitConfirmed},
		{"error", nil, errors.New("boom"), exitFailure},
		{"no result", nil, nil, exitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitFor(tt.result, tt.err); got != tt.want {
				t.Errorf("exitFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTranslatorPrecedence(t *testing.T) {
	t.Setenv("LC_ALL", "es_ES.UTF-8")
	if got := translator("de", "es").Tag(); got != language.German {
		t.Errorf("flag: %v, want German", got)
	}
	if got := translator("", "de").Tag(); got != language.German {
		t.Errorf("config: %v, want German", got)
	}
	if got := translator("", "").Tag(); got != language.Spanish {
		t.Errorf("env: %v, want Spanish", got)
	}
}
