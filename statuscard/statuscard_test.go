package statuscard

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/ravinduk/escapify-go/sysinfo"
)

func sampleStats() *sysinfo.Stats {
	return &sysinfo.Stats{
		CPUPercent:    42.5,
		CPUCount:      8,
		MemTotal:      16 << 30,
		MemUsed:       6 << 30,
		MemPercent:    37.5,
		DiskTotal:     512 << 30,
		DiskUsed:      128 << 30,
		DiskPercent:   25,
		NetSent:       1 << 20,
		NetRecv:       5 << 20,
		HostUptime:    26 * time.Hour,
		ProcessUptime: 90 * time.Minute,
		ProcessRSS:    48 << 20,
	}
}

func TestRender(t *testing.T) {
	card := New()

	data, err := card.Render(sampleStats())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if got := img.Bounds().Dx(); got != 420 {
		t.Errorf("width = %d, want 420", got)
	}
	if got := img.Bounds().Dy(); got <= 0 {
		t.Errorf("height = %d, want > 0", got)
	}
}

func TestRenderOptions(t *testing.T) {
	card := New(WithWidth(300), WithTitle("Bot Status"))

	data, err := card.Render(sampleStats())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if got := img.Bounds().Dx(); got != 300 {
		t.Errorf("width = %d, want 300", got)
	}
}

func TestRenderNilStats(t *testing.T) {
	if _, err := New().Render(nil); err == nil {
		t.Error("Render(nil) returned no error")
	}
}
