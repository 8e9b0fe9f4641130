package repository_test

import (
	"errors"
	"testing"

	"github.com/andy/reconnect/internal/repository"
	"github.com/andy/reconnect/internal/testutil"
)

func TestAddressBook_PerTypeUniqueness(t *testing.T) {
	ab := testutil.TypicalAddressBook()

	if err := ab.AddClient(testutil.Alice); !errors.Is(err, repository.ErrDuplicateEntity) {
		t.Fatalf("expected duplicate client, got %v", err)
	}
	if err := ab.AddDeal(testutil.SunnyVillaDeal); !errors.Is(err, repository.ErrDuplicateEntity) {
		t.Fatalf("expected duplicate deal, got %v", err)
	}
	if err := ab.AddEvent(testutil.MapleCourtMeeting); !errors.Is(err, repository.ErrDuplicateEntity) {
		t.Fatalf("expected duplicate event, got %v", err)
	}
	if !ab.HasProperty(testutil.OrchidRes) {
		t.Fatalf("expected property to exist")
	}
}

func TestAddressBook_ResetDataAndEqual(t *testing.T) {
	src := testutil.TypicalAddressBook()
	dst := repository.New()

	if dst.Equal(src) {
		t.Fatalf("empty book should not equal typical book")
	}
	if err := dst.ResetData(src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dst.Equal(src) {
		t.Fatalf("expected equal books after reset")
	}

	if err := src.RemoveClient(testutil.Daniel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dst.HasClient(testutil.Daniel) {
		t.Fatalf("reset data must not share state with the source")
	}
}
