package pnptex

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/valgut/go-pnptex/internal/fileutil"
)

// Subfolder names inside the class root directory.
const (
	abilityCardsDir = "AbilityCards"
	amdDir          = "AMD"
	nonAMDDir       = "NON_AMD"
)

// Singleton asset base names (without extension) expected at the root.
const (
	abilityBackName = "ability_card_back"
	amdBackName     = "amd_back"
	nonAMDBackName  = "non_amd_back"
	tokenName       = "character_token"
	matFrontName    = "character_mat"
	matBackName     = "character_mat_back"
	miniName        = "character_mini"
	sheetName       = "character_sheet"
)

// imageExtensions lists the supported image extensions in preference
// order: .jpg wins when a singleton exists under both.
var imageExtensions = []string{".jpg", ".png"}

// Bundle holds every asset path resolved from a class root directory.
// Card slices are sorted lexicographically so output is reproducible.
type Bundle struct {
	Root string

	AbilityCards []string
	AMD          []string
	NonAMD       []string

	AbilityBack string
	AMDBack     string
	NonAMDBack  string
	Token       string
	MatFront    string
	MatBack     string
	Mini        string
	Sheet       string
}

// LocateAssets scans root and resolves every asset the generator needs.
// Validation is eager: a missing mandatory folder or singleton fails here,
// before any layout work, with an error naming what is missing and where
// it was searched.
//
// The NON_AMD folder is optional; when absent its card set is empty.
func LocateAssets(root string) (*Bundle, error) {
	for _, dir := range []string{abilityCardsDir, amdDir} {
		info, err := os.Stat(filepath.Join(root, dir))
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: %s in %s", ErrMissingFolder, dir, root)
		}
	}

	b := &Bundle{Root: root}

	var err error
	if b.AbilityCards, err = listImages(filepath.Join(root, abilityCardsDir)); err != nil {
		return nil, err
	}
	if b.AMD, err = listImages(filepath.Join(root, amdDir)); err != nil {
		return nil, err
	}
	// NON_AMD is optional: an absent folder means an empty card set.
	if nonDir := filepath.Join(root, nonAMDDir); fileutil.DirExists(nonDir) {
		if b.NonAMD, err = listImages(nonDir); err != nil {
			return nil, err
		}
	}

	singletons := []struct {
		name string
		dst  *string
	}{
		{abilityBackName, &b.AbilityBack},
		{amdBackName, &b.AMDBack},
		{nonAMDBackName, &b.NonAMDBack},
		{tokenName, &b.Token},
		{matFrontName, &b.MatFront},
		{matBackName, &b.MatBack},
		{miniName, &b.Mini},
		{sheetName, &b.Sheet},
	}
	for _, s := range singletons {
		path, ok := resolveWithExtensions(filepath.Join(root, s.name), imageExtensions)
		if !ok {
			return nil, fmt.Errorf("%w: %s (JPG or PNG) in %s", ErrMissingAsset, s.name, root)
		}
		*s.dst = path
	}

	return b, nil
}

// listImages returns the sorted image paths directly inside dir.
// Subdirectories and non-image files are ignored.
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFolder, dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !isImageFile(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// isImageFile reports whether name carries a supported image extension.
func isImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, supported := range imageExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// resolveWithExtensions tries base+ext for each extension in order and
// returns the first path that exists as a regular file.
func resolveWithExtensions(base string, exts []string) (string, bool) {
	for _, ext := range exts {
		candidate := base + ext
		if fileutil.FileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}
