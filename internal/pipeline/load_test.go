package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/masresha/tgclean/internal/pipeline"
)

const exportHeader = "ID,channel_id,Channel Title,Channel Username,Message,Date,Media Path\n"

func writeExport(t *testing.T, rows string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "telegram_data.csv")
	if err := os.WriteFile(path, []byte(exportHeader+rows), 0o644); err != nil {
		t.Fatalf("failed to write export fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeExport(t,
		"1,100,Shega Store,shega,new arrivals,2024-05-01 10:00:00,photos/shega_1.jpg\n"+
			"2,100,Shega Store,shega,price update,2024-05-02 11:00:00,\n")

	p := pipeline.New(nil, 1000)
	got := p.Load(path)

	if len(got) != 2 {
		t.Fatalf("Load() returned %d rows, want 2", len(got))
	}
	first := got[0]
	if first.ID != "1" || first.ChannelID != "100" || first.ChannelTitle != "Shega Store" ||
		first.ChannelUsername != "shega" || first.Message != "new arrivals" ||
		first.Date != "2024-05-01 10:00:00" || first.MediaPath != "photos/shega_1.jpg" {
		t.Errorf("first row = %+v, columns mapped incorrectly", first)
	}
	if got[1].MediaPath != "" {
		t.Errorf("second row MediaPath = %q, want empty", got[1].MediaPath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	p := pipeline.New(nil, 1000)
	got := p.Load(filepath.Join(t.TempDir(), "nope.csv"))

	if len(got) != 0 {
		t.Errorf("Load() of missing file returned %d rows, want empty table", len(got))
	}
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	// Row with a field count that differs from the header.
	path := writeExport(t, "1,100,Shega Store\n")

	p := pipeline.New(nil, 1000)
	got := p.Load(path)

	if len(got) != 0 {
		t.Errorf("Load() of malformed file returned %d rows, want empty table", len(got))
	}
}

func TestLoadMissingColumn(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "telegram_data.csv")
	content := "ID,channel_id,Message,Date\n1,100,hello,2024-05-01\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write export fixture: %v", err)
	}

	p := pipeline.New(nil, 1000)
	got := p.Load(path)

	if len(got) != 0 {
		t.Errorf("Load() with missing columns returned %d rows, want empty table", len(got))
	}
}
