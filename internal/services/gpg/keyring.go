// Package gpg lists the secret keys available for signing.
package gpg

import (
	"bufio"
	"context"
	"log/slog"
	"strings"

	"github.com/riordanpawley/signingkey/internal/domain"
)

// Keyring wraps the gpg CLI for secret key listing
type Keyring struct {
	runner CommandRunner
	logger *slog.Logger
}

// NewKeyring creates a new Keyring with dependency injection
func NewKeyring(runner CommandRunner, logger *slog.Logger) *Keyring {
	if logger == nil {
		logger = slog.Default()
	}
	return &Keyring{
		runner: runner,
		logger: logger,
	}
}

// ListKeys returns the secret keys using `gpg --list-secret-keys --keyid-format long`,
// in the order gpg prints them.
func (k *Keyring) ListKeys(ctx context.Context) ([]domain.KeyRecord, error) {
	k.logger.Debug("listing secret keys")

	out, err := k.runner.Run(ctx, "--list-secret-keys", "--keyid-format", "long")
	if err != nil {
		return nil, &domain.GPGError{Op: "list-secret-keys", Err: err}
	}

	keys := ParseSecretKeys(out)
	k.logger.Debug("listed secret keys", "count", len(keys))
	return keys, nil
}

// ParseSecretKeys extracts key records from the human-readable listing:
//
//	sec   rsa4096/3AA5C34371567BD2 2023-01-01 [SC]
//	      4A3F...3AA5C34371567BD2
//	uid                 [ultimate] Jane Doe <jane@example.com>
//	ssb   rsa4096/42B317FD4BA89E7A 2023-01-01 [E]
//
// Each sec line opens a key; the first uid line after it closes the record
// with the text following the trust bracket. Keys without a uid are dropped.
func ParseSecretKeys(output string) []domain.KeyRecord {
	var keys []domain.KeyRecord
	pending := ""

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "sec") {
			pending = ""
			fields := strings.Fields(line)
			if len(fields) >= 2 {
				if _, id, found := strings.Cut(fields[1], "/"); found && id != "" {
					pending = id
				}
			}
			continue
		}

		if pending != "" && strings.HasPrefix(strings.TrimSpace(line), "uid") && strings.Contains(line, "[") {
			label := ""
			if _, rest, found := strings.Cut(line, "]"); found {
				label = strings.TrimSpace(rest)
			}
			keys = append(keys, domain.KeyRecord{ID: pending, Label: label})
			pending = ""
		}
	}

	return keys
}
