package pnptex

// Notes:
// - LocateAssets: tests eager validation, sorting, optional NON_AMD
// - resolveWithExtensions: tests extension preference order
// - isImageFile: tests extension filtering

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// singletonNames lists the eight mandatory root-level assets.
var singletonNames = []string{
	"ability_card_back", "amd_back", "non_amd_back", "character_token",
	"character_mat", "character_mat_back", "character_mini", "character_sheet",
}

// writeClassDir builds a valid class directory under t.TempDir with the
// given number of cards per category. Singletons are written as .png.
func writeClassDir(t *testing.T, ability, amd, nonAMD int) string {
	t.Helper()
	root := t.TempDir()

	writeCards := func(dir string, n int) {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < n; i++ {
			name := filepath.Join(root, dir, string(rune('a'+i))+".png")
			if err := os.WriteFile(name, []byte("img"), 0o644); err != nil {
				t.Fatal(err)
			}
		}
	}
	writeCards("AbilityCards", ability)
	writeCards("AMD", amd)
	if nonAMD >= 0 {
		writeCards("NON_AMD", nonAMD)
	}

	for _, name := range singletonNames {
		if err := os.WriteFile(filepath.Join(root, name+".png"), []byte("img"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

// ---------------------------------------------------------------------------
// TestLocateAssets - Directory Validation and Resolution
// ---------------------------------------------------------------------------

func TestLocateAssets(t *testing.T) {
	t.Parallel()

	root := writeClassDir(t, 3, 2, 1)

	b, err := LocateAssets(root)
	if err != nil {
		t.Fatalf("LocateAssets failed: %v", err)
	}

	if len(b.AbilityCards) != 3 {
		t.Errorf("got %d ability cards, want 3", len(b.AbilityCards))
	}
	if len(b.AMD) != 2 {
		t.Errorf("got %d AMD cards, want 2", len(b.AMD))
	}
	if len(b.NonAMD) != 1 {
		t.Errorf("got %d NON_AMD cards, want 1", len(b.NonAMD))
	}
	if b.AbilityBack == "" || b.Token == "" || b.Sheet == "" {
		t.Error("singleton assets not resolved")
	}
}

func TestLocateAssetsSorted(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, dir := range []string{"AbilityCards", "AMD"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	// Written out of order on purpose.
	for _, name := range []string{"zeta.png", "alpha.jpg", "mid.png"} {
		if err := os.WriteFile(filepath.Join(root, "AbilityCards", name), []byte("img"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	for _, name := range singletonNames {
		if err := os.WriteFile(filepath.Join(root, name+".jpg"), []byte("img"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	b, err := LocateAssets(root)
	if err != nil {
		t.Fatalf("LocateAssets failed: %v", err)
	}

	want := []string{"alpha.jpg", "mid.png", "zeta.png"}
	for i, p := range b.AbilityCards {
		if filepath.Base(p) != want[i] {
			t.Errorf("card %d = %s, want %s", i, filepath.Base(p), want[i])
		}
	}
}

func TestLocateAssetsMissingFolder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		remove string
	}{
		{name: "missing AbilityCards", remove: "AbilityCards"},
		{name: "missing AMD", remove: "AMD"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := writeClassDir(t, 1, 1, 0)
			if err := os.RemoveAll(filepath.Join(root, tt.remove)); err != nil {
				t.Fatal(err)
			}

			_, err := LocateAssets(root)
			if !errors.Is(err, ErrMissingFolder) {
				t.Fatalf("got %v, want ErrMissingFolder", err)
			}
			if !strings.Contains(err.Error(), tt.remove) {
				t.Errorf("error %q does not name the missing folder %q", err, tt.remove)
			}
			if !strings.Contains(err.Error(), root) {
				t.Errorf("error %q does not name the searched root", err)
			}
		})
	}
}

func TestLocateAssetsMissingSingleton(t *testing.T) {
	t.Parallel()

	root := writeClassDir(t, 1, 1, 0)
	if err := os.Remove(filepath.Join(root, "character_token.png")); err != nil {
		t.Fatal(err)
	}

	_, err := LocateAssets(root)
	if !errors.Is(err, ErrMissingAsset) {
		t.Fatalf("got %v, want ErrMissingAsset", err)
	}
	if !strings.Contains(err.Error(), "character_token") {
		t.Errorf("error %q does not name the missing asset", err)
	}
}

func TestLocateAssetsOptionalNonAMD(t *testing.T) {
	t.Parallel()

	// nonAMD = -1 skips creating the folder entirely.
	root := writeClassDir(t, 1, 1, -1)

	b, err := LocateAssets(root)
	if err != nil {
		t.Fatalf("LocateAssets failed without NON_AMD: %v", err)
	}
	if len(b.NonAMD) != 0 {
		t.Errorf("got %d NON_AMD cards, want 0", len(b.NonAMD))
	}
}

func TestLocateAssetsIgnoresNonImages(t *testing.T) {
	t.Parallel()

	root := writeClassDir(t, 2, 1, 0)
	if err := os.WriteFile(filepath.Join(root, "AbilityCards", "readme.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "AbilityCards", "drafts"), 0o755); err != nil {
		t.Fatal(err)
	}

	b, err := LocateAssets(root)
	if err != nil {
		t.Fatalf("LocateAssets failed: %v", err)
	}
	if len(b.AbilityCards) != 2 {
		t.Errorf("got %d ability cards, want 2 (non-images ignored)", len(b.AbilityCards))
	}
}

// ---------------------------------------------------------------------------
// TestResolveWithExtensions - Extension Preference
// ---------------------------------------------------------------------------

func TestResolveWithExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	base := filepath.Join(dir, "character_mat")

	// Only .png exists.
	if err := os.WriteFile(base+".png", []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, ok := resolveWithExtensions(base, imageExtensions)
	if !ok || got != base+".png" {
		t.Errorf("resolve = (%q, %v), want png fallback", got, ok)
	}

	// Both exist: .jpg wins.
	if err := os.WriteFile(base+".jpg", []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, ok = resolveWithExtensions(base, imageExtensions)
	if !ok || got != base+".jpg" {
		t.Errorf("resolve = (%q, %v), want jpg preferred", got, ok)
	}

	// Neither exists.
	if _, ok := resolveWithExtensions(filepath.Join(dir, "nope"), imageExtensions); ok {
		t.Error("resolve found a file that does not exist")
	}
}

// ---------------------------------------------------------------------------
// TestIsImageFile - Extension Filtering
// ---------------------------------------------------------------------------

func TestIsImageFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"card.png", true},
		{"card.jpg", true},
		{"CARD.PNG", true},
		{"card.jpeg", false},
		{"card.txt", false},
		{"card", false},
	}

	for _, tt := range tests {
		tt := tt
		if got := isImageFile(tt.name); got != tt.want {
			t.Errorf("isImageFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
