package cli

import (
	"github.com/noctalia-dev/noctalia-cli/internal/domain"
	"github.com/noctalia-dev/noctalia-cli/internal/ports"
)

// ResolveSource decides which upstream channel an install or update
// tracks. Precedence: an explicit flag wins, then the persisted choice,
// then an interactive prompt whose answer is saved for next time. Without
// a terminal the prompt degrades to the release default, also persisted.
// Passing both flags is the one CLI misuse with its own exit code.
func ResolveSource(store ports.ConfigStore, prompter ports.Prompter, component string, gitFlag, releaseFlag bool) (domain.SourceKind, error) {
	if gitFlag && releaseFlag {
		return "", domain.ErrConflictingSources
	}
	if gitFlag {
		return domain.SourceGit, nil
	}
	if releaseFlag {
		return domain.SourceRelease, nil
	}

	cfg, path := store.Load()
	if saved, ok := cfg.SourceOf(component); ok {
		return saved, nil
	}

	chosen := domain.SourceRelease
	if prompter.Enabled() {
		options := []string{string(domain.SourceRelease), string(domain.SourceGit)}
		idx, err := prompter.Select("Choose source for "+component, options, 0)
		if err == nil && idx == 1 {
			chosen = domain.SourceGit
		}
	}

	cfg.SetSource(component, chosen)
	// Persisting the choice is best-effort; the operation proceeds either
	// way and a later successful install writes the record again.
	_ = store.Save(cfg, path)
	return chosen, nil
}
