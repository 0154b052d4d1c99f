package palette

import (
	"image/color"
	"image/png"
	"os"
	"testing"
)

func writeTempPNG(t *testing.T) string {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "loader-test-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, solidImage(8, 8, color.RGBA{10, 20, 30, 255})); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return f.Name()
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	path := writeTempPNG(t)

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("bounds = %v, want 8x8", img.Bounds())
	}

	// Second load is served from cache; deleting the file proves it.
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached Load failed: %v", err)
	}
}

func TestImageCache_Evict(t *testing.T) {
	cache := NewImageCache()
	path := writeTempPNG(t)

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	os.Remove(path)
	cache.Evict(path)

	if _, err := cache.Load(path); err == nil {
		t.Error("Load after Evict should hit the disk and fail")
	}
}

func TestImageCache_LoadMissing(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load("/nonexistent/image.png"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestImageCache_Clear(t *testing.T) {
	cache := NewImageCache()
	path := writeTempPNG(t)

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	os.Remove(path)
	cache.Clear()

	if _, err := cache.Load(path); err == nil {
		t.Error("Load after Clear should hit the disk and fail")
	}
}
