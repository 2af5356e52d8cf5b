package widths_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-blitmask/pkg/widths"
)

func TestWidth_LiteralTable(t *testing.T) {
	tests := []struct {
		width      widths.Width
		storage    string
		zero       string
		complement string
		one        string
	}{
		{widths.W8, "uint8", "0x00", "0xFF", "0b00000001"},
		{widths.W16, "uint16", "0x0000", "0xFFFF", "0x0001"},
		{widths.W32, "uint32", "0x00000000", "0xFFFFFFFF", "0x00000001"},
		{widths.W64, "uint64", "0x0000000000000000", "0xFFFFFFFFFFFFFFFF", "0x0000000000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.width.String(), func(t *testing.T) {
			storage, err := tt.width.StorageType()
			if err != nil {
				t.Fatalf("storage type: %v", err)
			}
			if storage != tt.storage {
				t.Fatalf("storage: want %q got %q", tt.storage, storage)
			}

			got, err := tt.width.Literals()
			if err != nil {
				t.Fatalf("literals: %v", err)
			}
			want := map[string]string{
				widths.CanonicalZero:       tt.zero,
				widths.CanonicalComplement: tt.complement,
				widths.CanonicalOne:        tt.one,
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("literals mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWidth_ConvertMethod(t *testing.T) {
	name, err := widths.W16.ConvertMethod()
	if err != nil {
		t.Fatalf("convert method: %v", err)
	}
	if name != "ToUint16" {
		t.Fatalf("want ToUint16, got %q", name)
	}
}

func TestWidth_Unsupported(t *testing.T) {
	for _, w := range []widths.Width{0, 4, 24, 128, -8} {
		if err := w.Validate(); !errors.Is(err, widths.ErrUnsupportedWidth) {
			t.Fatalf("width %d: expected ErrUnsupportedWidth, got %v", int(w), err)
		}
		if _, err := w.StorageType(); !errors.Is(err, widths.ErrUnsupportedWidth) {
			t.Fatalf("width %d storage: expected ErrUnsupportedWidth, got %v", int(w), err)
		}
		if _, err := w.Literal(widths.LiteralOne); !errors.Is(err, widths.ErrUnsupportedWidth) {
			t.Fatalf("width %d literal: expected ErrUnsupportedWidth, got %v", int(w), err)
		}
	}
}

func TestParseList(t *testing.T) {
	got, err := widths.ParseList(" 32, 64 ,")
	if err != nil {
		t.Fatalf("parse list: %v", err)
	}
	if diff := cmp.Diff([]widths.Width{widths.W32, widths.W64}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := widths.ParseList("8,12"); !errors.Is(err, widths.ErrUnsupportedWidth) {
		t.Fatalf("expected ErrUnsupportedWidth, got %v", err)
	}
	if _, err := widths.Parse("sixteen"); !errors.Is(err, widths.ErrUnsupportedWidth) {
		t.Fatalf("expected ErrUnsupportedWidth for non-numeric width, got %v", err)
	}
}

func TestValidateList(t *testing.T) {
	if err := widths.ValidateList(widths.Supported()); err != nil {
		t.Fatalf("supported list rejected: %v", err)
	}
	if err := widths.ValidateList(nil); err == nil {
		t.Fatal("expected error for empty list")
	}
	if err := widths.ValidateList([]widths.Width{widths.W8, widths.W8}); err != nil {
		t.Fatalf("repeated width should be left to the orchestrator, got %v", err)
	}
	if err := widths.ValidateList([]widths.Width{widths.W8, 7}); !errors.Is(err, widths.ErrUnsupportedWidth) {
		t.Fatalf("expected ErrUnsupportedWidth, got %v", err)
	}
}
