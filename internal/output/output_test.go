package output

import (
	"bytes"
	"testing"
)

func TestVerboseSuppressedByDefault(t *testing.T) {
	var buf bytes.Buffer
	o := New(Config{Writer: &buf})

	o.Verbose("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("verbose output written without verbose mode: %q", buf.String())
	}

	o.Info("shown")
	if buf.String() != "shown\n" {
		t.Errorf("Info output = %q", buf.String())
	}
}

func TestVerboseEnabled(t *testing.T) {
	var buf bytes.Buffer
	o := New(Config{Writer: &buf, Verbose: true})

	o.Verbose("checking %s", "regular-2014-2015.csv")
	if buf.String() != "checking regular-2014-2015.csv\n" {
		t.Errorf("Verbose output = %q", buf.String())
	}
}

func TestErrorGoesToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	o := New(Config{Writer: &out, ErrWriter: &errOut})

	o.Error("boom: %v", "missing directory")
	if out.Len() != 0 {
		t.Errorf("error written to stdout: %q", out.String())
	}
	if errOut.String() != "boom: missing directory\n" {
		t.Errorf("Error output = %q", errOut.String())
	}
}

func TestResultMarkedUpOnTerminal(t *testing.T) {
	var out, errOut bytes.Buffer
	o := New(Config{Writer: &out, ErrWriter: &errOut, IsTTY: true})

	o.Result(true, "Updated %s", "regular-2014-2015.csv")
	if out.String() != "✓ Updated regular-2014-2015.csv\n" {
		t.Errorf("success result = %q", out.String())
	}

	o.Result(false, "%s: boom", "playoffs-2016-2017.csv")
	if errOut.String() != "✗ playoffs-2016-2017.csv: boom\n" {
		t.Errorf("failure result = %q", errOut.String())
	}
}

func TestResultPlainWhenRedirected(t *testing.T) {
	var out, errOut bytes.Buffer
	o := New(Config{Writer: &out, ErrWriter: &errOut, IsTTY: false})

	o.Result(true, "Updated %s", "regular-2014-2015.csv")
	if out.String() != "Updated regular-2014-2015.csv\n" {
		t.Errorf("success result = %q, want no marker", out.String())
	}

	o.Result(false, "%s: boom", "playoffs-2016-2017.csv")
	if errOut.String() != "playoffs-2016-2017.csv: boom\n" {
		t.Errorf("failure result = %q, want no marker", errOut.String())
	}
}

func TestMessagesAlwaysNewlineTerminated(t *testing.T) {
	var buf bytes.Buffer
	o := New(Config{Writer: &buf})

	o.Info("already terminated\n")
	if buf.String() != "already terminated\n" {
		t.Errorf("double newline added: %q", buf.String())
	}
}
