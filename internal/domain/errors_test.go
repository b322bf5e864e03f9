package domain

import (
	"errors"
	"io"
	"testing"
)

func TestTerminalError(t *testing.T) {
	err := &TerminalError{Op: "read event", Err: io.ErrUnexpectedEOF}

	if got, want := err.Error(), "terminal read event: unexpected EOF"; got != want {
		t.Errorf("TerminalError.Error() = %v, want %v", got, want)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestGitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  GitError
		want string
	}{
		{
			name: "with scope",
			err:  GitError{Op: "config set", Scope: "global", Err: errors.New("exit status 255")},
			want: "git config set [global]: exit status 255",
		},
		{
			name: "without scope",
			err:  GitError{Op: "config get", Err: errors.New("not a git repository")},
			want: "git config get: not a git repository",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("GitError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGPGError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  GPGError
		want string
	}{
		{
			name: "with message",
			err:  GPGError{Op: "list-secret-keys", Message: "no secret keyring"},
			want: "gpg list-secret-keys: no secret keyring",
		},
		{
			name: "with underlying error",
			err:  GPGError{Op: "list-secret-keys", Err: errors.New("executable file not found")},
			want: "gpg list-secret-keys: executable file not found",
		},
		{
			name: "minimal",
			err:  GPGError{Op: "list-secret-keys"},
			want: "gpg list-secret-keys failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("GPGError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	underlying := errors.New("underlying error")

	if unwrapped := (&GitError{Op: "test", Err: underlying}).Unwrap(); unwrapped != underlying {
		t.Errorf("GitError.Unwrap() = %v, want %v", unwrapped, underlying)
	}
	if unwrapped := (&GPGError{Op: "test", Err: underlying}).Unwrap(); unwrapped != underlying {
		t.Errorf("GPGError.Unwrap() = %v, want %v", unwrapped, underlying)
	}
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		in      string
		want    Scope
		wantErr bool
	}{
		{"local", ScopeLocal, false},
		{"", ScopeLocal, false},
		{"global", ScopeGlobal, false},
		{"system", ScopeLocal, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScope(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScope(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseScope(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestScope_String(t *testing.T) {
	if ScopeLocal.String() != "local" {
		t.Errorf("ScopeLocal.String() = %q", ScopeLocal.String())
	}
	if ScopeGlobal.String() != "global" {
		t.Errorf("ScopeGlobal.String() = %q", ScopeGlobal.String())
	}
}
