package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andy/reconnect/internal/storage"
	"github.com/andy/reconnect/internal/testutil"
)

func TestFileStorage_RoundTrip(t *testing.T) {
	for _, name := range []string{"book.json", "book.yaml", "book.yml"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := storage.NewFileStorage(filepath.Join(t.TempDir(), "nested", name))
			original := testutil.TypicalAddressBook()

			if err := storage.SaveAddressBook(ctx, s, original); err != nil {
				t.Fatalf("save: %v", err)
			}
			loaded, err := storage.LoadAddressBook(ctx, s)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !loaded.Equal(original) {
				t.Fatalf("round trip changed the book:\n got %+v\nwant %+v",
					storage.ToDocument(loaded), storage.ToDocument(original))
			}
		})
	}
}

func TestFileStorage_OptionalFieldsOmitted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	s := storage.NewFileStorage(path)
	if err := storage.SaveAddressBook(context.Background(), s, testutil.TypicalAddressBook()); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	// Maple Court has neither size nor description
	if strings.Contains(string(data), `"description": ""`) || strings.Contains(string(data), `"size": 0`) {
		t.Fatalf("absent fields should be omitted:\n%s", data)
	}
}

func TestFileStorage_MissingFile(t *testing.T) {
	s := storage.NewFileStorage(filepath.Join(t.TempDir(), "none.json"))
	if _, err := s.Load(context.Background()); !errors.Is(err, storage.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestFileStorage_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	_, err := storage.NewFileStorage(path).Load(context.Background())
	if err == nil || errors.Is(err, storage.ErrNoData) {
		t.Fatalf("expected a parse error, got %v", err)
	}
}

func TestToAddressBook_Errors(t *testing.T) {
	valid := storage.ToDocument(testutil.TypicalAddressBook())

	tests := []struct {
		name   string
		mutate func(d *storage.Document)
		want   string
	}{
		{
			name:   "missing client phone",
			mutate: func(d *storage.Document) { d.Clients[0].Phone = "" },
			want:   "Client's phone field is missing!",
		},
		{
			name:   "missing property owner",
			mutate: func(d *storage.Document) { d.Properties[1].Owner = "" },
			want:   "Property's owner field is missing!",
		},
		{
			name:   "missing event datetime",
			mutate: func(d *storage.Document) { d.Events[0].DateTime = "" },
			want:   "Event's datetime field is missing!",
		},
		{
			name:   "malformed price",
			mutate: func(d *storage.Document) { d.Properties[0].Price = 12 },
			want:   "Price should only contain positive numbers (in S$ thousands) between 3 to 6 digits",
		},
		{
			name:   "malformed status",
			mutate: func(d *storage.Document) { d.Deals[0].Status = "SOLD" },
			want:   "Deal status should be one of OPEN, PENDING or CLOSED",
		},
		{
			name:   "duplicate clients",
			mutate: func(d *storage.Document) { d.Clients = append(d.Clients, d.Clients[1]) },
			want:   "Client list contains duplicate client(s).",
		},
		{
			name: "duplicate properties by folded name",
			mutate: func(d *storage.Document) {
				p := d.Properties[0]
				p.Name = "SUNNY VILLA"
				d.Properties = append(d.Properties, p)
			},
			want: "Property list contains duplicate properties.",
		},
		{
			name:   "duplicate deals",
			mutate: func(d *storage.Document) { d.Deals = append(d.Deals, d.Deals[0]) },
			want:   "Deal list contains duplicate deal(s).",
		},
		{
			name:   "duplicate events",
			mutate: func(d *storage.Document) { d.Events = append(d.Events, d.Events[1]) },
			want:   "Event list contains duplicate event(s).",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := storage.ToDocument(testutil.TypicalAddressBook())
			tt.mutate(&doc)

			ab, err := doc.ToAddressBook()
			var illegal *storage.IllegalValueError
			if !errors.As(err, &illegal) {
				t.Fatalf("expected IllegalValueError, got %v", err)
			}
			if illegal.Message != tt.want {
				t.Errorf("message = %q, want %q", illegal.Message, tt.want)
			}
			if ab != nil {
				t.Errorf("no partial book should be returned")
			}
		})
	}

	if _, err := valid.ToAddressBook(); err != nil {
		t.Fatalf("unmodified document should decode: %v", err)
	}
}

func TestSampleDocument_Decodes(t *testing.T) {
	ab, err := storage.SampleDocument().ToAddressBook()
	if err != nil {
		t.Fatalf("sample data is invalid: %v", err)
	}
	if len(ab.Clients()) == 0 || len(ab.Deals()) == 0 {
		t.Fatalf("sample data should not be empty")
	}
}
