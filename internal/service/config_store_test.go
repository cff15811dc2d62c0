package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pipeline_dashboard/internal/models"
)

func TestConfigStoreService_Get(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		repo      *settingsRepoStub
		wantNil   bool
		wantError bool // an error entry is pushed to the ring
	}{
		{name: "document present", repo: &settingsRepoStub{doc: configured()}},
		{name: "document missing", repo: &settingsRepoStub{}, wantNil: true},
		{name: "backend unreachable", repo: &settingsRepoStub{loadErr: errors.New("dial tcp: refused")}, wantNil: true, wantError: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ring := newRing()
			s := NewConfigStoreService(tc.repo, "acme", ring, nopLog())

			got := s.Get(context.Background())
			if (got == nil) != tc.wantNil {
				t.Fatalf("Get() = %+v, wantNil %v", got, tc.wantNil)
			}
			if tc.repo.loadKeys[0] != "acme" {
				t.Fatalf("expected lookup by app id, got %q", tc.repo.loadKeys[0])
			}

			logs := ring.ReadAll()
			if tc.wantError {
				if len(logs) != 1 || logs[0].Severity != models.SeverityError {
					t.Fatalf("expected one error log entry, got %+v", logs)
				}
				if !strings.Contains(logs[0].Message, "refused") {
					t.Fatalf("log message should carry the cause: %q", logs[0].Message)
				}
			} else if len(logs) != 0 {
				t.Fatalf("expected no log entries, got %+v", logs)
			}
		})
	}
}

func TestConfigStoreService_SetOverwritesWholesale(t *testing.T) {
	t.Parallel()
	repo := &settingsRepoStub{doc: configured()}
	ring := newRing()
	s := NewConfigStoreService(repo, "default", ring, nopLog())

	next := models.Credentials{CrmAccessToken: "new", CrmLocationID: "loc-2"}
	if err := s.Set(context.Background(), next); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got := s.Get(context.Background())
	if got == nil || *got != next {
		t.Fatalf("stored = %+v, want %+v (voice fields must be cleared)", got, next)
	}
	if ring.Len() != 1 || ring.ReadAll()[0].Severity != models.SeverityInfo {
		t.Fatalf("expected one info entry, got %+v", ring.ReadAll())
	}
}

func TestConfigStoreService_SetFailure(t *testing.T) {
	t.Parallel()
	boom := errors.New("read-only file system")
	ring := newRing()
	s := NewConfigStoreService(&settingsRepoStub{saveErr: boom}, "default", ring, nopLog())

	err := s.Set(context.Background(), *configured())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped %v, got %v", boom, err)
	}
	if logs := ring.ReadAll(); len(logs) != 1 || logs[0].Severity != models.SeverityError {
		t.Fatalf("expected one error entry, got %+v", logs)
	}
}

func TestConfigStoreService_Seed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	seed := models.Credentials{CrmAccessToken: "env-token", CrmLocationID: "env-loc"}

	t.Run("writes when no document exists", func(t *testing.T) {
		repo := &settingsRepoStub{}
		s := NewConfigStoreService(repo, "default", newRing(), nopLog())
		wrote, err := s.Seed(ctx, seed)
		if err != nil || !wrote {
			t.Fatalf("Seed() = %v, %v; want true, nil", wrote, err)
		}
		if len(repo.saved) != 1 || repo.saved[0] != seed {
			t.Fatalf("unexpected saves: %+v", repo.saved)
		}
	})

	t.Run("never overwrites an existing document", func(t *testing.T) {
		repo := &settingsRepoStub{doc: configured()}
		s := NewConfigStoreService(repo, "default", newRing(), nopLog())
		wrote, err := s.Seed(ctx, seed)
		if err != nil || wrote {
			t.Fatalf("Seed() = %v, %v; want false, nil", wrote, err)
		}
		if len(repo.saved) != 0 {
			t.Fatalf("unexpected saves: %+v", repo.saved)
		}
	})

	t.Run("skips empty seed", func(t *testing.T) {
		repo := &settingsRepoStub{}
		s := NewConfigStoreService(repo, "default", newRing(), nopLog())
		if wrote, _ := s.Seed(ctx, models.Credentials{}); wrote {
			t.Fatal("empty seed must not be written")
		}
	})

	t.Run("propagates read failure", func(t *testing.T) {
		repo := &settingsRepoStub{loadErr: errors.New("locked")}
		s := NewConfigStoreService(repo, "default", newRing(), nopLog())
		if _, err := s.Seed(ctx, seed); err == nil {
			t.Fatal("expected error")
		}
		if len(repo.saved) != 0 {
			t.Fatal("must not write after a failed read")
		}
	})
}
