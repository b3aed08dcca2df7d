package journal

import (
	"bytes"
	"context"
	"os/exec"
	"reflect"
	"strings"
	"testing"

	"github.com/thobiasn/sieve/internal/filter"
)

func TestArgs(t *testing.T) {
	r := Runner{Extra: []string{"-o", "short-iso"}}
	got := r.Args(filter.Options{Time: filter.PreviousBoot{}, Source: filter.Unit{Name: "sshd.service"}})
	want := []string{"--no-pager", "--boot=-1", "--unit=sshd.service", "-o", "short-iso"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Args = %q, want %q", got, want)
	}
}

func TestCommandDefaultPath(t *testing.T) {
	cmd := Runner{}.Command(context.Background(), filter.Options{})
	if !strings.HasSuffix(cmd.Args[0], DefaultPath) {
		t.Errorf("argv[0] = %q, want %s", cmd.Args[0], DefaultPath)
	}
	if !reflect.DeepEqual(cmd.Args[1:], []string{"--no-pager"}) {
		t.Errorf("args = %q", cmd.Args[1:])
	}
}

func TestRunStreamsOutput(t *testing.T) {
	echo, err := exec.LookPath("echo")
	if err != nil {
		t.Skip("echo not available")
	}
	var out, errOut bytes.Buffer
	r := Runner{Path: echo}
	if err := r.Run(context.Background(), filter.Options{Time: filter.CurrentBoot{}}, &out, &errOut); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "--no-pager --boot" {
		t.Errorf("output = %q", got)
	}
}

func TestRunReportsFailure(t *testing.T) {
	r := Runner{Path: "/nonexistent/journalctl"}
	err := r.Run(context.Background(), filter.Options{}, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "journalctl") {
		t.Errorf("err = %v, want journalctl error", err)
	}
}
