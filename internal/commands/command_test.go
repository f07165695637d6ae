package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add drink water @daily x8", TypeAdd},
		{"done 2024-01-01", TypeDone},
		{"undo", TypeUndo},
		{"delete selected", TypeDelete},
		{"export /tmp/habits.txt", TypeExport},
		{"/theme light", TypeTheme},
		{"stats", TypeStats},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddArguments(t *testing.T) {
	cmd, err := Parse("/add drink water @weekly x8")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Name != "drink water" {
		t.Fatalf("unexpected name: %q", cmd.Add.Name)
	}
	if cmd.Add.Frequency != "weekly" || cmd.Add.Target != 8 {
		t.Fatalf("unexpected args: %+v", cmd.Add)
	}

	cmd, err = Parse("add stretch")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Frequency != "daily" || cmd.Add.Target != 1 {
		t.Fatalf("unexpected defaults: %+v", cmd.Add)
	}
}

func TestParseAddRejectsBadTarget(t *testing.T) {
	_, err := Parse("/add stretch x0")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/frobnicate now")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestParseThemeValidation(t *testing.T) {
	_, err := Parse("theme neon")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add read x2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Name != "read" || a.Target != 2 {
				t.Fatalf("unexpected args: %+v", a)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("stats")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
